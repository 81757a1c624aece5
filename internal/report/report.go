// Package report renders the plain-text status tables the presentation layer
// serves to humans.
package report

import (
	"fmt"
	"strings"

	"easypark-backend/internal/lot"
)

const (
	statusWidth = 70
	chargeWidth = 60
)

// ChargeBand maps a stored charge percentage to a display band.
func ChargeBand(percent int) string {
	switch {
	case percent < 20:
		return "low"
	case percent < 50:
		return "medium"
	default:
		return "good"
	}
}

// Status renders both pool tables for the given level.
func Status(regular, ev []lot.SlotVehicle, level int) string {
	var b strings.Builder
	writeVehicleTable(&b, "REGULAR VEHICLES", regular, level, "  (No vehicles parked)")
	b.WriteString("\n")
	writeVehicleTable(&b, "ELECTRIC VEHICLES", ev, level, "  (No electric vehicles parked)")
	return b.String()
}

func writeVehicleTable(b *strings.Builder, title string, vehicles []lot.SlotVehicle, level int, emptyLine string) {
	rule := strings.Repeat("=", statusWidth)
	b.WriteString(rule + "\n")
	b.WriteString(title + "\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(b, "%-6s%-8s%-15s%-12s%-12s%s\n", "Slot", "Floor", "Reg No.", "Color", "Make", "Model")
	b.WriteString(strings.Repeat("-", statusWidth) + "\n")

	if len(vehicles) == 0 {
		b.WriteString(emptyLine + "\n")
	} else {
		for _, sv := range vehicles {
			fmt.Fprintf(b, "%-6d%-8d%-15s%-12s%-12s%s\n",
				sv.SlotNumber, level, sv.Vehicle.Registration, sv.Vehicle.Color, sv.Vehicle.Make, sv.Vehicle.Model)
		}
	}
	b.WriteString(rule + "\n")
}

// ChargeStatus renders the EV charge-level table for the given level.
func ChargeStatus(ev []lot.SlotVehicle, level int) string {
	var b strings.Builder
	rule := strings.Repeat("=", chargeWidth)
	b.WriteString(rule + "\n")
	b.WriteString("EV CHARGE LEVELS\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%-6s%-8s%-15s%-10s%s\n", "Slot", "Floor", "Reg No.", "Charge %", "Band")
	b.WriteString(strings.Repeat("-", chargeWidth) + "\n")

	if len(ev) == 0 {
		b.WriteString("  (No electric vehicles parked)\n")
	} else {
		for _, sv := range ev {
			fmt.Fprintf(&b, "%-6d%-8d%-15s%-10d%s\n",
				sv.SlotNumber, level, sv.Vehicle.Registration, sv.Vehicle.ChargePercent, ChargeBand(sv.Vehicle.ChargePercent))
		}
	}
	b.WriteString(rule + "\n")
	return b.String()
}
