package app

import (
	"github.com/buckyapp/bucky/internal/event_bus"
	"github.com/buckyapp/bucky/pkg/expense"
	"github.com/buckyapp/bucky/pkg/export"
	"github.com/buckyapp/bucky/pkg/shift"
	"github.com/buckyapp/bucky/pkg/stats"
	"github.com/buckyapp/bucky/pkg/stream"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/buntdb"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus

	StreamRepo    stream.StreamRepo
	StreamService *stream.StreamServiceImpl
	StreamHandler *stream.StreamHandler

	ShiftRepo    shift.ShiftRepo
	ShiftService *shift.ShiftServiceImpl
	ShiftHandler *shift.ShiftHandler

	ExpenseRepo    expense.ExpenseRepo
	ExpenseService *expense.ExpenseServiceImpl
	ExpenseHandler *expense.ExpenseHandler

	StatsService *stats.StatsServiceImpl
	StatsHandler *stats.StatsHandler

	ExportService *export.ExportServiceImpl
	CsvRenderer   *export.CsvExportRendererImpl
	ExportHandler *export.ExportHandler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *buntdb.DB) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()

	deps.StreamRepo = stream.NewStreamRepo(db)
	deps.StreamService = stream.NewStreamServiceImpl(deps.StreamRepo, deps.EventBus)
	deps.StreamHandler = stream.NewStreamHandler(deps.StreamService)

	deps.ShiftRepo = shift.NewShiftRepo(db)
	deps.ShiftService = shift.NewShiftServiceImpl(deps.ShiftRepo, deps.EventBus)
	deps.ShiftHandler = shift.NewShiftHandler(deps.ShiftService, deps.StreamService.GetAll)

	deps.ExpenseRepo = expense.NewExpenseRepo(db)
	deps.ExpenseService = expense.NewExpenseServiceImpl(deps.ExpenseRepo, deps.EventBus)
	deps.ExpenseHandler = expense.NewExpenseHandler(deps.ExpenseService)

	deps.StatsService = stats.NewStatsServiceImpl(deps.StreamRepo, deps.ShiftRepo, deps.ExpenseRepo)
	deps.StatsHandler = stats.NewStatsHandler(deps.StatsService)

	deps.ExportService = export.NewExportServiceImpl(deps.StreamRepo, deps.ShiftRepo, deps.ExpenseRepo)
	deps.CsvRenderer = export.NewCsvExportRenderer()
	deps.ExportHandler = export.NewExportHandler(deps.ExportService, deps.CsvRenderer)

	registerSubscribers(deps)

	return deps
}

// registerSubscribers attaches event bus listeners that cross package
// boundaries. Deleting a stream leaves its shifts in place, so surface how
// many just became orphaned.
func registerSubscribers(deps *Dependencies) {
	event_bus.SubscribeTyped(deps.EventBus, event_bus.StreamDeletedEvent,
		func(e event_bus.EventT[event_bus.StreamDeleted]) error {
			count, err := deps.ShiftService.CountByStream(e.Context(), e.Data.Id)
			if err != nil {
				return err
			}
			if count > 0 {
				log.Warnf("stream %q deleted with %d shift(s) still referencing it", e.Data.Name, count)
			}
			return nil
		})
}
