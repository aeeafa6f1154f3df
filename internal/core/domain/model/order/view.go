package order

// LocationView is the wire form of a coordinate pair.
type LocationView struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// View is an immutable snapshot of an order in its wire form. Events and
// query results carry full Views rather than deltas so observers never have
// to reconstruct state from partial updates.
type View struct {
	ID              ID            `json:"id"`
	CustomerRef     string        `json:"customerRef"`
	PickupLocation  string        `json:"pickupLocation"`
	DropoffLocation string        `json:"dropoffLocation"`
	ItemDescription string        `json:"itemDescription"`
	ContactNumber   string        `json:"contactNumber"`
	Status          string        `json:"status"`
	RiderRef        *string       `json:"riderRef"`
	RiderLocation   *LocationView `json:"riderLocation,omitempty"`
}

// LocationUpdate is the payload of a riderLocationUpdated event.
type LocationUpdate struct {
	OrderID ID      `json:"id"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// View builds a snapshot of the order's current state. The caller must hold
// whatever lock guards the aggregate; the returned value shares no memory
// with it.
func (o *Order) View() View {
	v := View{
		ID:              o.id,
		CustomerRef:     o.customerID.String(),
		PickupLocation:  o.pickupLocation,
		DropoffLocation: o.dropoffLocation,
		ItemDescription: o.itemDescription,
		ContactNumber:   o.contactNumber,
		Status:          o.status.String(),
	}

	if o.riderID != nil {
		rider := o.riderID.String()
		v.RiderRef = &rider
	}
	if o.riderLocation != nil {
		v.RiderLocation = &LocationView{
			Lat: o.riderLocation.Lat(),
			Lng: o.riderLocation.Lng(),
		}
	}

	return v
}
