package routers

import (
	"fmt"
	"mediflow-service/internal/app/services/core/patients"
	"mediflow-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *patients.PatientController) {
	patientPath := fmt.Sprintf("/{%s}", constvars.URLParamPatientID)

	router.Get(patientPath, patientController.GetPatientByID)
	router.Post(patientPath+"/recommended-tests", patientController.AddRecommendedTests)
}
