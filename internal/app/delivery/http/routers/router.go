package routers

import (
	"fmt"
	"mediflow-service/internal/app/config"
	"mediflow-service/internal/app/delivery/http/middlewares"
	"mediflow-service/internal/app/services/core/labs"
	"mediflow-service/internal/app/services/core/patients"
	"mediflow-service/internal/app/services/core/walkins"
	"mediflow-service/internal/app/services/core/xrays"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	labController *labs.LabController,
	xrayController *xrays.XrayController,
	walkInController *walkins.WalkInController,
	patientController *patients.PatientController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestSizeLimit)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/lab", func(r chi.Router) {
			attachLabRoutes(r, labController)
		})

		r.Route("/xray", func(r chi.Router) {
			attachXrayRoutes(r, xrayController)
		})

		r.Route("/walkin", func(r chi.Router) {
			attachWalkInRoutes(r, walkInController)
		})

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, patientController)
		})
	})
}
