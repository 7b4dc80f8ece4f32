package xrays

import (
	"context"
	"encoding/json"
	"mediflow-service/internal/pkg/constvars"
	"mediflow-service/internal/pkg/dto/requests"
	"mediflow-service/internal/pkg/exceptions"
	"mediflow-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxMultipartMemory = 32 << 20

type XrayController struct {
	Log               *zap.Logger
	XrayUsecase       XrayUsecase
	StatisticsUsecase StatisticsUsecase
}

func NewXrayController(logger *zap.Logger, xrayUsecase XrayUsecase, statisticsUsecase StatisticsUsecase) *XrayController {
	return &XrayController{
		Log:               logger,
		XrayUsecase:       xrayUsecase,
		StatisticsUsecase: statisticsUsecase,
	}
}

func (ctrl *XrayController) CreateXrayRecord(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxMultipartMemory)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.CreateXrayRecordRequest{
		PatientID:     r.FormValue("patientId"),
		PatientName:   r.FormValue("patientName"),
		TestName:      r.FormValue("testName"),
		Category:      r.FormValue("category"),
		Diagnosis:     r.FormValue("diagnosis"),
		PerformedBy:   r.FormValue("performedBy"),
		PerformedDate: r.FormValue("performedDate"),
		Priority:      r.FormValue("priority"),
		Status:        r.FormValue("status"),
		Files:         r.MultipartForm.File[constvars.MultipartImagesField],
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	record, err := ctrl.XrayUsecase.CreateXrayRecord(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.XrayRecordCreatedSuccess, record)
}

func (ctrl *XrayController) GetXrayRecordByID(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, constvars.URLParamXrayRecordID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	record, err := ctrl.XrayUsecase.GetXrayRecordByID(ctx, recordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.XrayRecordGetSuccess, record)
}

func (ctrl *XrayController) ListXrayRecords(w http.ResponseWriter, r *http.Request) {
	query, err := utils.ParseListRecordsQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	records, total, err := ctrl.XrayUsecase.ListXrayRecords(ctx, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, query.Page, query.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.XrayRecordListSuccess, pagination, records)
}

func (ctrl *XrayController) UpdateXrayRecord(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, constvars.URLParamXrayRecordID)

	request, err := parseUpdateXrayRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	record, err := ctrl.XrayUsecase.UpdateXrayRecord(ctx, recordID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.XrayRecordUpdatedSuccess, record)
}

func (ctrl *XrayController) DeleteXrayRecord(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, constvars.URLParamXrayRecordID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.XrayUsecase.DeleteXrayRecord(ctx, recordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.XrayRecordDeletedSuccess, nil)
}

func (ctrl *XrayController) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	statistics, err := ctrl.StatisticsUsecase.GetStatistics(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.XrayStatisticsGetSuccess, statistics)
}

// parseUpdateXrayRequest accepts either a JSON body (metadata-only update) or
// a multipart form carrying replacement files alongside the text fields. In
// multipart form the image patches travel in a "records" field as a JSON
// array.
func parseUpdateXrayRequest(r *http.Request) (*requests.UpdateXrayRecordRequest, error) {
	if !strings.HasPrefix(r.Header.Get(constvars.HeaderContentType), constvars.MIMEMultipartForm) {
		request := new(requests.UpdateXrayRecordRequest)
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		return request, nil
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	request := &requests.UpdateXrayRecordRequest{
		PatientName:   r.FormValue("patientName"),
		TestName:      r.FormValue("testName"),
		Category:      r.FormValue("category"),
		Diagnosis:     r.FormValue("diagnosis"),
		PerformedBy:   r.FormValue("performedBy"),
		PerformedDate: r.FormValue("performedDate"),
		Priority:      r.FormValue("priority"),
		Status:        r.FormValue("status"),
		Files:         r.MultipartForm.File[constvars.MultipartImagesField],
	}
	if raw := r.FormValue("records"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &request.Records); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}
	return request, nil
}
