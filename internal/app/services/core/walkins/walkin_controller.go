package walkins

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

type WalkInController struct {
	Log           *zap.Logger
	WalkInUsecase WalkInUsecase
}

func NewWalkInController(logger *zap.Logger, walkInUsecase WalkInUsecase) *WalkInController {
	return &WalkInController{
		Log:           logger,
		WalkInUsecase: walkInUsecase,
	}
}

func (ctrl *WalkInController) CreateWalkInRecord(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxMultipartMemory)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.CreateWalkInRecordRequest{
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

	record, err := ctrl.WalkInUsecase.CreateWalkInRecord(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.WalkInRecordCreatedSuccess, record)
}

func (ctrl *WalkInController) GetWalkInRecordByID(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, constvars.URLParamWalkInRecordID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	record, err := ctrl.WalkInUsecase.GetWalkInRecordByID(ctx, recordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WalkInRecordGetSuccess, record)
}

func (ctrl *WalkInController) ListWalkInRecords(w http.ResponseWriter, r *http.Request) {
	query, err := utils.ParseListRecordsQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	records, total, err := ctrl.WalkInUsecase.ListWalkInRecords(ctx, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, query.Page, query.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.WalkInRecordListSuccess, pagination, records)
}

func (ctrl *WalkInController) UpdateWalkInRecord(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, constvars.URLParamWalkInRecordID)

	request, err := parseUpdateWalkInRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	record, err := ctrl.WalkInUsecase.UpdateWalkInRecord(ctx, recordID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WalkInRecordUpdatedSuccess, record)
}

func (ctrl *WalkInController) DeleteWalkInRecord(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, constvars.URLParamWalkInRecordID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.WalkInUsecase.DeleteWalkInRecord(ctx, recordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WalkInRecordDeletedSuccess, nil)
}

func parseUpdateWalkInRequest(r *http.Request) (*requests.UpdateWalkInRecordRequest, error) {
	if !strings.HasPrefix(r.Header.Get(constvars.HeaderContentType), constvars.MIMEMultipartForm) {
		request := new(requests.UpdateWalkInRecordRequest)
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		return request, nil
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	request := &requests.UpdateWalkInRecordRequest{
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
	if raw := r.FormValue("images"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &request.Images); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}
	return request, nil
}
