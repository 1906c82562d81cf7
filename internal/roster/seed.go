package roster

import "DriverDesk/internal/models"

// Seed is the bundled roster used when no roster has been saved yet or the
// saved one cannot be read.
func Seed() []models.Driver {
	return []models.Driver{
		{ID: "CH001", Name: "Karim Benali", Subcontractor: "TransExpress", Tour: "T01", Plate: "AB-123-CD", Phone: "+33612345678"},
		{ID: "CH002", Name: "Julie Moreau", Subcontractor: "TransExpress", Tour: "T02", Plate: "EF-456-GH", Phone: "+33623456789"},
		{ID: "CH003", Name: "Thomas Lefèvre", Subcontractor: "Rapid'Colis", Tour: "T03", Plate: "IJ-789-KL"},
		{ID: "CH004", Name: "Sofia Da Silva", Subcontractor: "Rapid'Colis", Tour: "T04", Phone: "+33634567890"},
		{ID: "CH005", Name: "Mehdi Haddad", Subcontractor: "Logistique Sud", Tour: "T05", Plate: "MN-012-OP"},
	}
}
