package models

// Officer is a single entry of a company's leadership roster.
type Officer struct {
	Name  *string
	Title *string
}

// CompanyProfile holds descriptive company information fetched from the
// provider's assetProfile and price modules.
type CompanyProfile struct {
	Symbol   string
	Name     *string
	Summary  *string
	Industry *string
	Sector   *string
	Officers []Officer
}
