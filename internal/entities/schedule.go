package entities

// DayEntry is one calendar day inside the availability payload sent by the
// booking widget. The JSON keys follow the upstream contract, including the
// "AvaliableTimes" typo, which cannot be fixed without breaking callers.
type DayEntry struct {
	Date           string `json:"Date"`
	AvailableTimes []Slot `json:"AvaliableTimes"`
}

// Slot is a single bookable window. Times arrive as "HH:MM" or "HH:MM:SS";
// only the first five characters are ever compared.
type Slot struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ResolvedSlot is the slot picked for the chosen date/time, with times
// truncated to HH:MM and the date pinned to the 03:00 UTC instant the
// downstream consumer expects for Brasília calendar dates.
type ResolvedSlot struct {
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date"`
}
