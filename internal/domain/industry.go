package domain

// Industry is the sector a client operates in.
type Industry string

const (
	IndustryInformationTechnology Industry = "Information Technology"
	IndustryHealthCare            Industry = "Health Care"
	IndustryFinancials            Industry = "Financials"
	IndustryConsumerDiscretionary Industry = "Consumer Discretionary"
	IndustryCommunicationServices Industry = "Communication Services"
	IndustryIndustrials           Industry = "Industrials"
	IndustryConsumerStaples       Industry = "Consumer Staples"
	IndustryEnergyUtilities       Industry = "Energy Utilities"
	IndustryRealEstate            Industry = "Real Estate"
	IndustryMaterials             Industry = "Materials"
)

// IsValid returns true if the industry exactly matches one of the defined
// constants. Matching is case and spelling exact.
func (i Industry) IsValid() bool {
	switch i {
	case IndustryInformationTechnology, IndustryHealthCare, IndustryFinancials,
		IndustryConsumerDiscretionary, IndustryCommunicationServices, IndustryIndustrials,
		IndustryConsumerStaples, IndustryEnergyUtilities, IndustryRealEstate, IndustryMaterials:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (i Industry) String() string {
	return string(i)
}
