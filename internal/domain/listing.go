package domain

// Listing is the slice of a marketplace listing that price rendering needs.
// Price, Lat and Lng are kept loosely typed because REST payloads send them as
// numbers or numeric strings.
type Listing struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	Kind  string `yaml:"kind,omitempty" json:"kind,omitempty"` // property, event, restaurant
	Price any    `yaml:"price" json:"price"`
	Lat   any    `yaml:"lat,omitempty" json:"lat,omitempty"`
	Lng   any    `yaml:"lng,omitempty" json:"lng,omitempty"`
}

// PriceRow is one rendered line of a price sheet.
type PriceRow struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Kind          string `json:"kind,omitempty"`
	RawPrice      string `json:"raw_price"`
	Display       string `json:"display"`
	Amount        string `json:"amount"`
	ValidLocation bool   `json:"valid_location"`
}

// PriceSheet is a set of listings priced in a single display currency.
type PriceSheet struct {
	Currency string     `json:"currency"`
	Rows     []PriceRow `json:"rows"`
}
