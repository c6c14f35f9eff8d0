package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

// WritePDFFile writes the submission as a paginated printable report:
// a heading, the respondent block, then one multi-line block per record.
func WritePDFFile(path string, sub *model.Submission) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Ward Hazard Risk Assessment Survey", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	r := sub.Respondent
	for _, line := range []string{
		fmt.Sprintf("Name: %s", r.Name),
		fmt.Sprintf("District Municipality: %s", r.DistrictMunicipality),
		fmt.Sprintf("Local Municipality: %s", r.LocalMunicipality),
		fmt.Sprintf("Ward: %s", r.Ward),
		fmt.Sprintf("Email: %s", r.Email),
	} {
		pdf.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
	}
	pdf.MultiCell(0, 8, fmt.Sprintf("Extra Info: %s", r.ExtraInfo), "", "L", false)
	pdf.CellFormat(0, 8, fmt.Sprintf("Date: %s", r.Date.Format(dateLayout)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, rec := range sub.Records {
		pdf.MultiCell(0, 8, recordLine(sub.Variant, rec), "", "L", false)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return goerr.Wrap(err, "failed to write PDF file", goerr.T(types.ErrTagPersistence), goerr.V("path", path))
	}
	return nil
}
