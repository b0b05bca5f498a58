package dashboard

import (
	"go.uber.org/zap"

	"sitetwin/internal/chart"
	"sitetwin/internal/model"
	"sitetwin/internal/service/catalog"
)

func (d *Dashboard) buildFinancial(view *View) {
	rows := catalog.Financials()
	planned, spent := catalog.FinancialTotals(rows)

	fv := &FinancialView{
		Rows:         rows,
		TotalPlanned: planned,
		TotalSpent:   spent,
	}
	js, err := chart.Financial(rows).JSON()
	if err != nil {
		d.log.Warn("encode financial chart", zap.Error(err))
	} else {
		fv.Chart = js
	}
	view.Financial = fv
}

func (d *Dashboard) buildPrecast(view *View, params Params) {
	elements := catalog.PrecastElements()
	selected := params.Type
	if selected == "" {
		selected = model.PrecastFilterAll
	}
	view.Precast = &PrecastView{
		Types:    catalog.PrecastTypes(elements),
		Selected: selected,
		Elements: catalog.FilterPrecast(elements, selected),
	}
}
