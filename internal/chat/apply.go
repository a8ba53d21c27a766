package chat

import (
	"tatdocs/internal/shipment"
)

// Apply merges a command into the form, reporting whether anything
// changed. Blank command fields leave the corresponding form fields
// alone; a create_shipment with no items updates customer fields only,
// keeping the at-least-one-line invariant intact.
func Apply(form *shipment.ShipmentFormData, cmd Command) (bool, error) {
	switch cmd.Action {
	case ActionCreateShipment:
		if len(cmd.Items) > 0 {
			items := make([]shipment.LineItem, 0, len(cmd.Items))
			for _, ci := range cmd.Items {
				items = append(items, shipment.LineItem{
					ProductID: ci.ProductID,
					Quantity:  ci.Quantity,
					UnitType:  ci.UnitType,
					UnitPrice: ci.UnitPrice,
				})
			}
			if err := form.ReplaceItems(items); err != nil {
				return false, err
			}
		}
		mergeCustomer(form, cmd)
		return true, nil

	case ActionUpdateCustomer:
		mergeCustomer(form, cmd)
		return true, nil

	default:
		return false, nil
	}
}

func mergeCustomer(form *shipment.ShipmentFormData, cmd Command) {
	if cmd.CustomerName != "" {
		form.CustomerName = cmd.CustomerName
	}
	if cmd.MexicoAddress != "" {
		form.MexicoAddress = cmd.MexicoAddress
	}
	if cmd.RFC != "" {
		form.RFC = cmd.RFC
	}
}
