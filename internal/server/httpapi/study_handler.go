package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/studyboard/internal/common"
	"github.com/dmitrijs2005/studyboard/internal/server/services"
)

type StudyHandler struct {
	studyLog *services.StudyLogService
}

func NewStudyHandler(studyLog *services.StudyLogService) *StudyHandler {
	return &StudyHandler{studyLog: studyLog}
}

type appendRecordReq struct {
	Date       string  `json:"date"`
	StudyHours float64 `json:"study_hours"`
	Score      int     `json:"score"`
}

// POST /api/study/records
func (h *StudyHandler) AppendRecord(c *gin.Context) {
	var req appendRecordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, common.ErrorValidation)
		return
	}

	s := currentSession(c)
	record, err := h.studyLog.Append(c.Request.Context(), s.Username, req.Date, req.StudyHours, req.Score)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"record": record})
}

// GET /api/study/records
func (h *StudyHandler) ListRecords(c *gin.Context) {
	s := currentSession(c)
	records, err := h.studyLog.List(c.Request.Context(), s.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"records": records})
}
