package sales

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/vladislavdragonenkov/restock/internal/domain"
)

const receiptSubject = "Your receipt"

var receiptTemplate = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"money": formatMoney,
}).Parse(`<!DOCTYPE html>
<html>
<body>
<h1>Order receipt</h1>
<p>Served by: {{.UserName}}</p>
<p>Table: {{.TableName}}</p>
<p>Date: {{.Date}}</p>
<table>
<thead><tr><th>Item</th><th>Qty</th><th>Unit price</th><th>Total</th><th>Notes</th></tr></thead>
<tbody>
{{- range .Items}}
<tr><td>{{.ProductName}}</td><td>{{.Quantity}}</td><td>{{money .UnitPrice}}</td><td>{{money .TotalPrice}}</td><td>{{.Modifications}}</td></tr>
{{- end}}
</tbody>
</table>
<p>Tip: {{money .Tip}}</p>
<p><strong>Total: {{money .TotalPrice}}</strong></p>
</body>
</html>
`))

// RenderReceipt строит HTML-чек продажи. Значения экранируются шаблоном.
func RenderReceipt(sale domain.Sale) (string, error) {
	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, sale); err != nil {
		return "", fmt.Errorf("render receipt: %w", err)
	}
	return buf.String(), nil
}

// formatMoney печатает сумму в минимальных единицах как целую и дробную часть.
func formatMoney(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}
