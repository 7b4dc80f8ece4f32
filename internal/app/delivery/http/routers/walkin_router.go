package routers

import (
	"fmt"
	"mediflow-service/internal/app/services/core/walkins"
	"mediflow-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachWalkInRoutes(router chi.Router, walkInController *walkins.WalkInController) {
	recordPath := fmt.Sprintf("/{%s}", constvars.URLParamWalkInRecordID)

	router.Post("/", walkInController.CreateWalkInRecord)
	router.Get("/", walkInController.ListWalkInRecords)
	router.Get(recordPath, walkInController.GetWalkInRecordByID)
	router.Put(recordPath, walkInController.UpdateWalkInRecord)
	router.Delete(recordPath, walkInController.DeleteWalkInRecord)
}
