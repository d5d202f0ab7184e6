package types

// MitigationType is the kind of corrective action a mitigation option takes
type MitigationType string

const (
	MitigationAltSupplier          MitigationType = "ALT_SUPPLIER"
	MitigationExpediteShipment     MitigationType = "EXPEDITE_SHIPMENT"
	MitigationAirFreight           MitigationType = "AIR_FREIGHT"
	MitigationRescheduleProduction MitigationType = "RESCHEDULE_PRODUCTION"
	MitigationAdjustSafetyStock    MitigationType = "ADJUST_SAFETY_STOCK"
	MitigationRerouteTransport     MitigationType = "REROUTE_TRANSPORT"
	MitigationIncreaseOrderQty     MitigationType = "INCREASE_ORDER_QTY"
)

var mitigationTypeLabels = map[MitigationType]string{
	MitigationAltSupplier:          "Alternate Supplier",
	MitigationExpediteShipment:     "Expedite Shipment",
	MitigationAirFreight:           "Air Freight",
	MitigationRescheduleProduction: "Reschedule Production",
	MitigationAdjustSafetyStock:    "Adjust Safety Stock",
	MitigationRerouteTransport:     "Re-route Transport",
	MitigationIncreaseOrderQty:     "Increase Order Quantity",
}

// IsValid checks if the mitigation type is valid
func (t MitigationType) IsValid() bool {
	_, ok := mitigationTypeLabels[t]
	return ok
}

// Label returns a human readable label
func (t MitigationType) Label() string {
	if l, ok := mitigationTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

func (t MitigationType) String() string {
	return string(t)
}
