package console

import (
	"airship-delivery/internal/domain"
	"fmt"
	"io"
	"iter"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	NoDeliveries = "No deliveries to display"
	EmptyLog     = "The Captain's log is empty."
)

func Credits(c float64) string { return fmt.Sprintf("%.2f", c) }

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
		t.Style().Title.Align = text.AlignCenter
	}
	return t
}

// Manifest renders every delivery in order, or NoDeliveries when there are none.
func Manifest(w io.Writer, all iter.Seq2[int, domain.Delivery]) int {
	t := newTable(w, "ALL DELIVERIES")
	t.AppendHeader(table.Row{"#", "Customer", "Item", "Quantity", "Cost"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	n := 0
	for pos, d := range all {
		t.AppendRow(table.Row{pos, d.Customer, d.Item, d.Quantity, Credits(d.Cost)})
		n++
	}
	if n == 0 {
		fmt.Fprintln(w, NoDeliveries)
		return 0
	}

	t.Render()
	return n
}

// Card renders a single delivery together with its manifest position.
func Card(w io.Writer, e domain.Entry) {
	t := newTable(w, "")
	t.AppendRows([]table.Row{
		{"Delivery number", e.Position},
		{"Name", e.Customer},
		{"Item", e.Item},
		{"Quantity", e.Quantity},
		{"Cost", Credits(e.Cost)},
	})
	t.Render()
}

// Receipt echoes a freshly recorded shipment.
func Receipt(w io.Writer, d domain.Delivery) {
	fmt.Fprintln(w, "  Recording shipment...")
	t := newTable(w, "")
	t.AppendRows([]table.Row{
		{"Sender", d.Customer},
		{"Cargo", d.Item},
		{"Units", d.Quantity},
		{"Value", Credits(d.Cost) + " credits"},
	})
	t.Render()
}

// Log renders the Captain's log.
func Log(w io.Writer, entries []domain.LogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, EmptyLog)
		return
	}

	t := newTable(w, "CAPTAIN'S LOG")
	t.AppendHeader(table.Row{"#", "Time", "Action", "Customer", "Item", "Quantity", "Cost"})
	for _, e := range entries {
		t.AppendRow(table.Row{
			e.Seq,
			e.At.Local().Format("15:04:05"),
			string(e.Op),
			e.Delivery.Customer,
			e.Delivery.Item,
			e.Delivery.Quantity,
			Credits(e.Delivery.Cost),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	t.Render()
}
