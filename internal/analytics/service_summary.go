package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/MihaiKuro/asd/internal/entity"
	"github.com/shopspring/decimal"
)

const topInterventions = 5

// ServiceSummary aggregates workshop tickets. A nil tr covers every ticket.
func (s *Service) ServiceSummary(ctx context.Context, tr *entity.TimeRange) (*entity.ServiceSummary, error) {
	sos, err := s.services.GetServiceOrders(ctx, tr)
	if err != nil {
		return nil, fmt.Errorf("can't get service orders: %w", err)
	}

	sum := summarizeServiceOrders(sos)

	ids := make([]int, 0, len(sum.MechanicLoad))
	for _, ml := range sum.MechanicLoad {
		if ml.MechanicID != 0 {
			ids = append(ids, ml.MechanicID)
		}
	}
	if len(ids) > 0 {
		mechanics, err := s.services.GetMechanicsByIds(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("can't get mechanics: %w", err)
		}
		names := make(map[int]string, len(mechanics))
		for _, m := range mechanics {
			names[m.ID] = m.Name
		}
		for i := range sum.MechanicLoad {
			sum.MechanicLoad[i].MechanicName = names[sum.MechanicLoad[i].MechanicID]
		}
	}
	return sum, nil
}

// summarizeServiceOrders computes the ticket statistics without mechanic names.
// Unassigned tickets are counted under mechanic id 0.
func summarizeServiceOrders(sos []entity.ServiceOrder) *entity.ServiceSummary {
	vehicles := map[string]struct{}{}
	works := map[string]int{}
	load := map[int]int{}
	total := decimal.Zero

	for _, so := range sos {
		vehicles[so.Vehicle] = struct{}{}
		works[so.WorksPerformed]++
		mid := 0
		if so.MechanicID.Valid {
			mid = int(so.MechanicID.Int32)
		}
		load[mid]++
		total = total.Add(so.TotalCost)
	}

	interventions := make([]entity.InterventionCount, 0, len(works))
	for w, n := range works {
		interventions = append(interventions, entity.InterventionCount{WorksPerformed: w, Count: n})
	}
	sort.Slice(interventions, func(i, j int) bool {
		if interventions[i].Count != interventions[j].Count {
			return interventions[i].Count > interventions[j].Count
		}
		return interventions[i].WorksPerformed < interventions[j].WorksPerformed
	})
	if len(interventions) > topInterventions {
		interventions = interventions[:topInterventions]
	}

	mechanicLoad := make([]entity.MechanicLoad, 0, len(load))
	for id, n := range load {
		mechanicLoad = append(mechanicLoad, entity.MechanicLoad{MechanicID: id, Count: n})
	}
	sort.Slice(mechanicLoad, func(i, j int) bool {
		if mechanicLoad[i].Count != mechanicLoad[j].Count {
			return mechanicLoad[i].Count > mechanicLoad[j].Count
		}
		return mechanicLoad[i].MechanicID < mechanicLoad[j].MechanicID
	})

	avg := decimal.Zero
	if len(sos) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(sos))))
	}

	return &entity.ServiceSummary{
		VehiclesCount: len(vehicles),
		Interventions: interventions,
		AvgOrder:      avg,
		TotalRevenue:  total,
		MechanicLoad:  mechanicLoad,
	}
}
