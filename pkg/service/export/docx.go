package export

import (
	"fmt"
	"os"

	"github.com/fumiama/go-docx"
	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

// WriteDOCXFile writes the submission as a formatted document: a heading,
// the respondent block, then one paragraph per record.
func WriteDOCXFile(path string, sub *model.Submission) error {
	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph()
	title.AddText("Ward Hazard Risk Assessment Survey").Size("32").Bold()

	r := sub.Respondent
	for _, line := range []string{
		fmt.Sprintf("Name: %s", r.Name),
		fmt.Sprintf("District Municipality: %s", r.DistrictMunicipality),
		fmt.Sprintf("Local Municipality: %s", r.LocalMunicipality),
		fmt.Sprintf("Ward: %s", r.Ward),
		fmt.Sprintf("Email: %s", r.Email),
		fmt.Sprintf("Extra Info: %s", r.ExtraInfo),
		fmt.Sprintf("Date: %s", r.Date.Format(dateLayout)),
		"---",
	} {
		doc.AddParagraph().AddText(line)
	}

	for _, rec := range sub.Records {
		doc.AddParagraph().AddText(recordLine(sub.Variant, rec))
	}

	f, err := os.Create(path) // #nosec G304 - path is derived from SafeFilename
	if err != nil {
		return goerr.Wrap(err, "failed to create DOCX file", goerr.T(types.ErrTagPersistence), goerr.V("path", path))
	}
	defer f.Close() //nolint:errcheck

	if _, err := doc.WriteTo(f); err != nil {
		return goerr.Wrap(err, "failed to write DOCX file", goerr.T(types.ErrTagPersistence), goerr.V("path", path))
	}
	return f.Close()
}

// recordLine renders one record as a single display line, shared by the
// document and report formats so all artifacts carry the same data.
func recordLine(variant types.SchemaVariant, rec model.Record) string {
	if variant == types.VariantDescriptive {
		return fmt.Sprintf("Hazard: %s | Question: %s | Response: %s",
			rec.Hazard, rec.Question, rec.Response)
	}
	return fmt.Sprintf("Hazard: %s | Likelihood: %s | Impact: %s | Disruption: %s | Risk Score: %d",
		rec.Hazard, rec.Likelihood, rec.Impact, rec.Disruption, rec.RiskScore)
}
