// Package smart maps SMART attribute identifiers to human-readable names.
//
// The table is an optional collaborator of the presentation layer: the
// parser core never depends on it, a nil Table is valid, and any key the
// table doesn't know labels as itself.
package smart

// Table maps attribute keys (decimal ID strings) to descriptive names.
type Table map[string]string

// Label returns the descriptive name for key, or key itself when the
// table is nil or doesn't know the key.
func (t Table) Label(key string) string {
	if name, ok := t[key]; ok {
		return name
	}
	return key
}

// Known returns the built-in table of well-known ATA SMART attributes.
// Vendors disagree on some IDs; these are the smartmontools consensus
// names for the commonly reported ones.
func Known() Table {
	return Table{
		"1":   "Raw Read Error Rate",
		"2":   "Throughput Performance",
		"3":   "Spin-Up Time",
		"4":   "Start/Stop Count",
		"5":   "Reallocated Sectors Count",
		"7":   "Seek Error Rate",
		"8":   "Seek Time Performance",
		"9":   "Power-On Hours",
		"10":  "Spin Retry Count",
		"12":  "Power Cycle Count",
		"177": "Wear Leveling Count",
		"184": "End-to-End Error",
		"187": "Reported Uncorrectable Errors",
		"188": "Command Timeout",
		"190": "Airflow Temperature",
		"193": "Load Cycle Count",
		"194": "Temperature",
		"196": "Reallocation Event Count",
		"197": "Current Pending Sectors",
		"198": "Offline Uncorrectable Sectors",
		"199": "UltraDMA CRC Error Count",
		"231": "SSD Life Left",
		"233": "Media Wearout Indicator",
		"241": "Total LBAs Written",
		"242": "Total LBAs Read",
	}
}
