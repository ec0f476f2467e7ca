package export

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/advisor-cli/internal/model"
)

// Sheet names in a plan workbook.
const (
	SheetSummary     = "Summary"
	SheetAllocation  = "Allocation"
	SheetLabels      = "Labels"
	SheetGap         = "Allocation Gap"
	SheetSteps       = "Steps"
	SheetRiskFactors = "Risk Factors"
)

// PlanWorkbook renders an investment plan as a workbook with one sheet per
// plan section.
func PlanWorkbook(plan *model.InvestmentPlan) (*xlsx.File, error) {
	if plan == nil {
		return nil, eris.New("export: nil plan")
	}
	f := xlsx.NewFile()

	s := plan.Summary
	sheet, err := f.AddSheet(SheetSummary)
	if err != nil {
		return nil, eris.Wrap(err, "export: add summary sheet")
	}
	addRow(sheet, "Field", "Value")
	addRow(sheet, "Portfolio", s.PortfolioName)
	addRow(sheet, "Portfolio ID", s.PortfolioID)
	addFloatRow(sheet, "Risk Level", float64(s.RiskLevel))
	addFloatRow(sheet, "Expected Return (%)", s.ExpectedReturn)
	addFloatRow(sheet, "Expected Volatility (%)", s.ExpectedVolatility)
	addRow(sheet, "Rebalance Frequency", string(s.Rebalance))
	addFloatRow(sheet, "Risk Score", s.RiskScore)
	addRow(sheet, "Risk Tolerance", s.Tolerance.DisplayName())

	if sheet, err = f.AddSheet(SheetAllocation); err != nil {
		return nil, eris.Wrap(err, "export: add allocation sheet")
	}
	addRow(sheet, "Symbol", "Name", "Percent")
	for _, a := range plan.Allocation {
		row := sheet.AddRow()
		row.AddCell().SetString(a.Symbol)
		row.AddCell().SetString(a.Name)
		row.AddCell().SetInt(a.Percent)
	}

	if sheet, err = f.AddSheet(SheetLabels); err != nil {
		return nil, eris.Wrap(err, "export: add labels sheet")
	}
	addRow(sheet, "Dimension", "Value", "Percent")
	for _, dim := range model.Dimensions {
		for _, share := range plan.LabelBreakdown[dim] {
			row := sheet.AddRow()
			row.AddCell().SetString(string(dim))
			row.AddCell().SetString(share.Value)
			row.AddCell().SetFloat(share.Percent)
		}
	}

	if sheet, err = f.AddSheet(SheetGap); err != nil {
		return nil, eris.Wrap(err, "export: add gap sheet")
	}
	addRow(sheet, "Bucket", "Gap")
	for _, b := range model.AssetBuckets {
		gap, ok := plan.AllocationGap[b]
		if !ok {
			continue
		}
		addFloatRow(sheet, string(b), gap)
	}

	if sheet, err = f.AddSheet(SheetSteps); err != nil {
		return nil, eris.Wrap(err, "export: add steps sheet")
	}
	addRow(sheet, "Step", "Title", "Detail")
	for i, st := range plan.Steps {
		row := sheet.AddRow()
		row.AddCell().SetInt(i + 1)
		row.AddCell().SetString(st.Title)
		row.AddCell().SetString(st.Detail)
	}

	if sheet, err = f.AddSheet(SheetRiskFactors); err != nil {
		return nil, eris.Wrap(err, "export: add risk factors sheet")
	}
	addRow(sheet, "Risk Factor")
	for _, rf := range plan.RiskFactors {
		addRow(sheet, rf)
	}

	return f, nil
}

// WritePlanXLSX saves the plan workbook to path.
func WritePlanXLSX(path string, plan *model.InvestmentPlan) error {
	f, err := PlanWorkbook(plan)
	if err != nil {
		return err
	}
	return eris.Wrapf(f.Save(path), "export: save %s", path)
}

// WritePlan streams the plan workbook to w.
func WritePlan(w io.Writer, plan *model.InvestmentPlan) error {
	f, err := PlanWorkbook(plan)
	if err != nil {
		return err
	}
	return eris.Wrap(f.Write(w), "export: write workbook")
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}

func addFloatRow(sheet *xlsx.Sheet, label string, v float64) {
	row := sheet.AddRow()
	row.AddCell().SetString(label)
	row.AddCell().SetFloat(v)
}
