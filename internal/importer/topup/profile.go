package topup

// Profile describes the column layout of a top-up CSV export.
// Adding a new format is just adding a new Profile to the profiles slice.
type Profile struct {
	Name      string
	ClientCol string
	AmountCol string
	RefCol    string // optional
}

// requiredCols returns the column names that must be present for this profile to match.
func (p Profile) requiredCols() []string {
	return []string{p.ClientCol, p.AmountCol}
}

// profiles is the ordered list of export formats to try during auto-detection.
// More specific profiles should come first to avoid false matches.
var profiles = []Profile{
	{
		Name:      "agence",
		ClientCol: "N° client",
		AmountCol: "Montant versé",
		RefCol:    "Réf. opération",
	},
	{
		Name:      "guichet",
		ClientCol: "Client",
		AmountCol: "Montant",
		RefCol:    "Référence",
	},
}
