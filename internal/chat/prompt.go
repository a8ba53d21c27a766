package chat

import (
	"fmt"
	"strings"

	"tatdocs/internal/catalog"
	"tatdocs/internal/shipment"
)

// BuildSystemPrompt assembles the assistant's context: the full product
// digest, the live shipment digest, and the command grammar the model
// answers mutations with.
func BuildSystemPrompt(cat *catalog.Catalog, form shipment.ShipmentFormData, calc shipment.Calculations) string {
	var b strings.Builder

	b.WriteString("You are a helpful assistant for Texas American Trade, Inc. (TATI), a company that exports petroleum chemical additives from Houston, TX to Mexico via Laredo.\n\n")

	fmt.Fprintf(&b, "PRODUCTS DATABASE (%d products):\n", cat.Len())
	for _, p := range cat.Products() {
		fmt.Fprintf(&b, "- %s (ID: %s): UN# %s, Hazard Class: %s, Density: %g, Tote: %gkg, Drum: %gkg\n",
			p.Name, p.ID, p.UNNumber, p.HazardClass, p.Density, p.KgPerTote, p.KgPerDrum)
	}

	customer := form.CustomerName
	if customer == "" {
		customer = "Not set"
	}
	products := make([]string, 0, len(calc.Items))
	for _, item := range calc.Items {
		products = append(products, fmt.Sprintf("%g %s of %s",
			item.Quantity.Float64(), item.UnitType, item.Product.Name))
	}
	hazmat := "No"
	if calc.HasHazmat {
		hazmat = "Yes"
	}

	b.WriteString("\nCURRENT SHIPMENT INFO:\n")
	fmt.Fprintf(&b, "- Invoice: %s\n", calc.InvoiceNumber)
	fmt.Fprintf(&b, "- Customer: %s\n", customer)
	fmt.Fprintf(&b, "- Ship Date: %s\n", form.ShipDate)
	fmt.Fprintf(&b, "- Products: %s\n", strings.Join(products, ", "))
	fmt.Fprintf(&b, "- Total Value: $%s\n", calc.TotalValue.StringFixed(2))
	fmt.Fprintf(&b, "- Total Weight: %g KG\n", calc.TotalGrossWeight)
	fmt.Fprintf(&b, "- Has Hazmat: %s\n", hazmat)

	b.WriteString(`
When users ask to CREATE a shipment, respond with a JSON block in this format:
` + "```json" + `
{
  "action": "create_shipment",
  "items": [{"productId": "P13", "quantity": 20, "unitType": "totes", "unitPrice": 2450}],
  "customerName": "Customer Name",
  "mexicoAddress": "Address in Mexico",
  "rfc": "RFC123456ABC"
}
` + "```" + `

When users ask to UPDATE customer info, respond with:
` + "```json" + `
{
  "action": "update_customer",
  "customerName": "New Name",
  "mexicoAddress": "New Address",
  "rfc": "RFC123"
}
` + "```" + `

Be helpful, concise, and knowledgeable about international shipping, hazmat regulations, and Mexican customs requirements.`)

	return b.String()
}
