package jobs

import (
	"context"
	"log/slog"

	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// CollectionReport summarizes the stored records.
type CollectionReport struct {
	Dishes          int
	Orders          int
	OrdersByStatus  map[order.Status]int
	DishesOnOrder   int
	PendingRevenue  int
	UnknownStatuses int
}

// CollectionReportJob periodically logs a CollectionReport.
type CollectionReportJob struct {
	listDishes queries.ListDishesQueryHandler
	listOrders queries.ListOrdersQueryHandler
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewCollectionReportJob creates a report job running on schedule.
func NewCollectionReportJob(
	listDishes queries.ListDishesQueryHandler,
	listOrders queries.ListOrdersQueryHandler,
	schedule string,
	logger *slog.Logger,
) *CollectionReportJob {
	return &CollectionReportJob{
		listDishes: listDishes,
		listOrders: listOrders,
		schedule:   schedule,
		cron:       cron.New(),
		logger:     logger.With("component", "collection_report_job"),
	}
}

// Start schedules the job. An invalid schedule is returned as an error.
func (j *CollectionReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Collection report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job and waits for a running report to finish.
func (j *CollectionReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Collection report job stopped")
}

// Run builds one report and logs it.
func (j *CollectionReportJob) Run(ctx context.Context) {
	report, err := j.Report(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Collection report failed", "error", err)
		return
	}

	attrs := []any{
		"dishes", report.Dishes,
		"orders", report.Orders,
		"dishes_on_order", report.DishesOnOrder,
		"pending_revenue", report.PendingRevenue,
	}
	for _, status := range order.Statuses() {
		attrs = append(attrs, "orders_"+status.String(), report.OrdersByStatus[status])
	}
	if report.UnknownStatuses > 0 {
		attrs = append(attrs, "orders_unknown_status", report.UnknownStatuses)
	}
	j.logger.InfoContext(ctx, "Collection report", attrs...)
}

// Report counts the stored dishes and orders.
// PendingRevenue prices the lines of orders that are not yet delivered with
// the current dish prices; lines naming unknown dishes are skipped.
func (j *CollectionReportJob) Report(ctx context.Context) (CollectionReport, error) {
	dishes, err := j.listDishes.Handle(ctx, queries.NewListDishesQuery())
	if err != nil {
		return CollectionReport{}, err
	}

	orders, err := j.listOrders.Handle(ctx, queries.NewListOrdersQuery())
	if err != nil {
		return CollectionReport{}, err
	}

	prices := make(map[string]int, len(dishes))
	for _, d := range dishes {
		prices[d.ID] = d.Price
	}

	report := CollectionReport{
		Dishes:         len(dishes),
		Orders:         len(orders),
		OrdersByStatus: make(map[order.Status]int, len(order.Statuses())),
	}
	for _, o := range orders {
		if o.Status.Validate() != nil {
			report.UnknownStatuses++
		} else {
			report.OrdersByStatus[o.Status]++
		}
		report.DishesOnOrder += o.TotalQuantity()

		if o.Status.IsTerminal() {
			continue
		}
		for _, item := range o.Dishes {
			report.PendingRevenue += prices[item.DishID] * item.Quantity
		}
	}
	return report, nil
}
