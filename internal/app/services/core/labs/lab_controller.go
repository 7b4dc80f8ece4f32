package labs

import (
	"context"
	"encoding/json"
	"mediflow-service/internal/pkg/constvars"
	"mediflow-service/internal/pkg/dto/requests"
	"mediflow-service/internal/pkg/exceptions"
	"mediflow-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LabController struct {
	Log        *zap.Logger
	LabUsecase LabUsecase
}

func NewLabController(logger *zap.Logger, labUsecase LabUsecase) *LabController {
	return &LabController{
		Log:        logger,
		LabUsecase: labUsecase,
	}
}

func (ctrl *LabController) CreateLabRecord(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateLabRecordRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	record, err := ctrl.LabUsecase.CreateLabRecord(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.LabRecordCreatedSuccess, record)
}

func (ctrl *LabController) GetLabRecordByID(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, constvars.URLParamLabRecordID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	record, err := ctrl.LabUsecase.GetLabRecordByID(ctx, recordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LabRecordGetSuccess, record)
}

func (ctrl *LabController) ListLabRecords(w http.ResponseWriter, r *http.Request) {
	query, err := utils.ParseListRecordsQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	records, total, err := ctrl.LabUsecase.ListLabRecords(ctx, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, query.Page, query.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.LabRecordListSuccess, pagination, records)
}

func (ctrl *LabController) UpdateLabRecord(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, constvars.URLParamLabRecordID)

	request := new(requests.UpdateLabRecordRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	record, err := ctrl.LabUsecase.UpdateLabRecord(ctx, recordID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LabRecordUpdatedSuccess, record)
}

func (ctrl *LabController) DeleteLabRecord(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, constvars.URLParamLabRecordID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.LabUsecase.DeleteLabRecord(ctx, recordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LabRecordDeletedSuccess, nil)
}
