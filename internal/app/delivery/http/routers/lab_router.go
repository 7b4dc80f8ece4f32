package routers

import (
	"fmt"
	"mediflow-service/internal/app/services/core/labs"
	"mediflow-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachLabRoutes(router chi.Router, labController *labs.LabController) {
	recordPath := fmt.Sprintf("/{%s}", constvars.URLParamLabRecordID)

	router.Post("/", labController.CreateLabRecord)
	router.Get("/", labController.ListLabRecords)
	router.Get(recordPath, labController.GetLabRecordByID)
	router.Put(recordPath, labController.UpdateLabRecord)
	router.Delete(recordPath, labController.DeleteLabRecord)
}
