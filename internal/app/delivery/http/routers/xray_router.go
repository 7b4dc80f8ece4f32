package routers

import (
	"fmt"
	"mediflow-service/internal/app/services/core/xrays"
	"mediflow-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachXrayRoutes(router chi.Router, xrayController *xrays.XrayController) {
	recordPath := fmt.Sprintf("/{%s}", constvars.URLParamXrayRecordID)

	router.Post("/", xrayController.CreateXrayRecord)
	router.Get("/", xrayController.ListXrayRecords)
	// The statistics route must be registered before the id route so the
	// literal segment wins.
	router.Get("/statistics", xrayController.GetStatistics)
	router.Get(recordPath, xrayController.GetXrayRecordByID)
	router.Put(recordPath, xrayController.UpdateXrayRecord)
	router.Delete(recordPath, xrayController.DeleteXrayRecord)
}
