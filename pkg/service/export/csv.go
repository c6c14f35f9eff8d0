package export

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/utils/safe"
)

// dateLayout is the respondent date column format
const dateLayout = "2006-01-02"

// respondentColumns are the leading columns of every tabular row
var respondentColumns = []string{
	"Respondent Name",
	"District Municipality",
	"Local Municipality",
	"Ward",
	"Email",
	"Extra Info",
	"Date",
}

var scoredColumns = []string{"Hazard", "Likelihood", "Impact", "Disruption", "Risk Score"}

var descriptiveColumns = []string{"Hazard", "Question", "Response"}

// Header returns the tabular column schema for the given variant
func Header(variant types.SchemaVariant) []string {
	header := make([]string, 0, len(respondentColumns)+len(scoredColumns))
	header = append(header, respondentColumns...)
	if variant == types.VariantDescriptive {
		return append(header, descriptiveColumns...)
	}
	return append(header, scoredColumns...)
}

// WriteCSV writes the submission as tabular rows, one row per record,
// with respondent fields as leading columns.
func WriteCSV(w io.Writer, sub *model.Submission) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header(sub.Variant)); err != nil {
		return goerr.Wrap(err, "failed to write CSV header", goerr.T(types.ErrTagPersistence))
	}

	for _, rec := range sub.Records {
		if err := cw.Write(recordRow(sub, rec)); err != nil {
			return goerr.Wrap(err, "failed to write CSV row", goerr.T(types.ErrTagPersistence))
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush CSV", goerr.T(types.ErrTagPersistence))
	}
	return nil
}

func recordRow(sub *model.Submission, rec model.Record) []string {
	r := sub.Respondent
	row := []string{
		r.Name,
		r.DistrictMunicipality,
		r.LocalMunicipality,
		r.Ward,
		r.Email,
		r.ExtraInfo,
		r.Date.Format(dateLayout),
	}

	if sub.Variant == types.VariantDescriptive {
		return append(row, rec.Hazard, rec.Question, rec.Response)
	}
	return append(row,
		rec.Hazard,
		rec.Likelihood.String(),
		rec.Impact.String(),
		rec.Disruption.String(),
		strconv.Itoa(rec.RiskScore),
	)
}

// WriteCSVFile writes the submission to path
func WriteCSVFile(path string, sub *model.Submission) error {
	f, err := os.Create(path) // #nosec G304 - path is derived from SafeFilename
	if err != nil {
		return goerr.Wrap(err, "failed to create CSV file", goerr.T(types.ErrTagPersistence), goerr.V("path", path))
	}
	defer f.Close() //nolint:errcheck

	if err := WriteCSV(f, sub); err != nil {
		return err
	}
	return f.Close()
}

// ReadCSV parses a tabular submission file back into a Submission. The
// respondent block is reconstructed from the leading columns of the first
// row; every row of one submission shares exactly one respondent.
func ReadCSV(r io.Reader, variant types.SchemaVariant) (*model.Submission, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read CSV header")
	}
	want := Header(variant)
	if len(header) != len(want) {
		return nil, goerr.New("unexpected CSV column count",
			goerr.V("want", len(want)), goerr.V("got", len(header)))
	}

	sub := &model.Submission{Variant: variant}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read CSV row")
		}

		if sub.Respondent == nil {
			date, err := time.Parse(dateLayout, row[6])
			if err != nil {
				return nil, goerr.Wrap(err, "invalid date column", goerr.V("value", row[6]))
			}
			sub.Respondent = &model.Respondent{
				Name:                 row[0],
				DistrictMunicipality: row[1],
				LocalMunicipality:    row[2],
				Ward:                 row[3],
				Email:                row[4],
				ExtraInfo:            row[5],
				Date:                 date,
			}
		}

		rec := model.Record{Hazard: row[7]}
		if variant == types.VariantDescriptive {
			rec.Question = row[8]
			rec.Response = row[9]
		} else {
			rec.Likelihood = types.Level(row[8])
			rec.Impact = types.Level(row[9])
			rec.Disruption = types.Level(row[10])
			score, err := strconv.Atoi(row[11])
			if err != nil {
				return nil, goerr.Wrap(err, "invalid risk score column", goerr.V("value", row[11]))
			}
			rec.RiskScore = score
		}
		sub.Records = append(sub.Records, rec)
	}

	return sub, nil
}

// ReadCSVFile parses the tabular submission file at path
func ReadCSVFile(ctx context.Context, path string, variant types.SchemaVariant) (*model.Submission, error) {
	f, err := os.Open(path) // #nosec G304 - path comes from our own artifact set
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open CSV file", goerr.V("path", path))
	}
	defer safe.Close(ctx, f)

	return ReadCSV(f, variant)
}
