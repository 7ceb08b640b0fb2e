package shared

// Property is one managed listing. IDs follow the listing-name derivation used
// by the normalizer (code before the first hyphen, lowercased).
type Property struct {
	ID      string
	Name    string
	Address string
	// SearchQuery is a places-API friendly variant of the address.
	SearchQuery string
}

// Properties is the managed portfolio. The warmer iterates it to pre-fill the
// places cache; there is no database behind it.
var Properties = []Property{
	{
		ID:          "2b_n1_a",
		Name:        "2B N1 A - 29 Shoreditch Heights",
		Address:     "29 Shoreditch High Street, London E1 6PN",
		SearchQuery: "accommodation 29 Shoreditch High Street London",
	},
	{
		ID:          "1b_s2_b",
		Name:        "1B S2 B - 15 Canary Wharf Luxury",
		Address:     "15 South Quay, London E14 9SH",
		SearchQuery: "accommodation 15 South Quay London",
	},
	{
		ID:          "3b_w1_c",
		Name:        "3B W1 C - 42 Notting Hill Garden",
		Address:     "42 Ladbroke Grove, London W11 2PB",
		SearchQuery: "accommodation 42 Ladbroke Grove London",
	},
	{
		ID:          "2b_ec1_d",
		Name:        "2B EC1 D - 8 City Financial District",
		Address:     "8 Moorgate, London EC2R 6EA",
		SearchQuery: "accommodation 8 Moorgate London",
	},
	{
		ID:          "1b_e2_e",
		Name:        "1B E2 E - 23 Brick Lane Modern",
		Address:     "23 Brick Lane, London E1 6QL",
		SearchQuery: "accommodation 23 Brick Lane London",
	},
}
