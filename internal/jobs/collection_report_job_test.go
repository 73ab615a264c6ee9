package jobs_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"grubdash/internal/adapters/out/memory"
	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportJob(t *testing.T, seed memory.SeedData, schedule string, buf *bytes.Buffer) *jobs.CollectionReportJob {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Seed(t.Context(), seed))

	logger := slog.New(slog.NewJSONHandler(buf, nil))
	return jobs.NewCollectionReportJob(
		queries.NewListDishesQueryHandler(store),
		queries.NewListOrdersQueryHandler(store),
		schedule,
		logger,
	)
}

func TestCollectionReportJob_Report(t *testing.T) {
	seed := memory.SeedData{
		Dishes: []dish.Dish{
			{ID: "d1", Name: "a", Description: "a", Price: 5, ImageURL: "u"},
			{ID: "d2", Name: "b", Description: "b", Price: 7, ImageURL: "u"},
		},
		Orders: []order.Order{
			{ID: "o1", DeliverTo: "x", MobileNumber: "1", Status: order.Pending, Dishes: []order.Item{{DishID: "d1", Quantity: 2}}},
			{ID: "o2", DeliverTo: "x", MobileNumber: "1", Status: order.Preparing, Dishes: []order.Item{{DishID: "d2", Quantity: 1}, {DishID: "gone", Quantity: 4}}},
			{ID: "o3", DeliverTo: "x", MobileNumber: "1", Status: order.Delivered, Dishes: []order.Item{{DishID: "d1", Quantity: 3}}},
		},
	}
	job := newReportJob(t, seed, "@every 1m", new(bytes.Buffer))

	report, err := job.Report(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Dishes)
	assert.Equal(t, 3, report.Orders)
	assert.Equal(t, map[order.Status]int{order.Pending: 1, order.Preparing: 1, order.Delivered: 1}, report.OrdersByStatus)
	assert.Equal(t, 10, report.DishesOnOrder)
	assert.Equal(t, 2*5+1*7, report.PendingRevenue)
	assert.Zero(t, report.UnknownStatuses)
}

func TestCollectionReportJob_Run(t *testing.T) {
	seed, err := memory.DefaultSeed()
	require.NoError(t, err)

	var buf bytes.Buffer
	job := newReportJob(t, seed, "@every 1m", &buf)

	job.Run(t.Context())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Collection report", entry["msg"])
	assert.Equal(t, "collection_report_job", entry["component"])
	assert.InDelta(t, 3, entry["dishes"], 0)
	assert.InDelta(t, 2, entry["orders"], 0)
	assert.InDelta(t, 1, entry["orders_delivered"], 0)
	assert.InDelta(t, 1, entry["orders_out-for-delivery"], 0)
	assert.InDelta(t, 0, entry["orders_pending"], 0)
}

func TestCollectionReportJob_StartStop(t *testing.T) {
	var buf bytes.Buffer
	job := newReportJob(t, memory.SeedData{}, "@every 1h", &buf)

	require.NoError(t, job.Start())
	job.Stop()

	assert.Contains(t, buf.String(), "Collection report job started")
	assert.Contains(t, buf.String(), "Collection report job stopped")
}

func TestCollectionReportJob_InvalidSchedule(t *testing.T) {
	job := newReportJob(t, memory.SeedData{}, "not a schedule", new(bytes.Buffer))
	require.Error(t, job.Start())
}

func TestJobManager(t *testing.T) {
	store := memory.NewStore()
	listDishes := queries.NewListDishesQueryHandler(store)
	listOrders := queries.NewListOrdersQueryHandler(store)
	logger := slog.New(slog.NewJSONHandler(new(bytes.Buffer), nil))

	t.Run("empty schedule disables the report", func(t *testing.T) {
		jm := jobs.NewJobManager(listDishes, listOrders, "", logger)
		assert.Equal(t, 0, jm.Len())
		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("starts and stops the report", func(t *testing.T) {
		jm := jobs.NewJobManager(listDishes, listOrders, "@every 1h", logger)
		assert.Equal(t, 1, jm.Len())
		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("invalid schedule fails to start", func(t *testing.T) {
		jm := jobs.NewJobManager(listDishes, listOrders, "every now and then", logger)
		require.Error(t, jm.StartAll())
	})
}
