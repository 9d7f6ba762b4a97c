package analysis

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	domain "shogi_insight/internal/domain/analysis"
	appErrors "shogi_insight/internal/errors"
	"shogi_insight/internal/httpresponse"
	analysisuc "shogi_insight/internal/usecase/analysis"
	"shogi_insight/internal/utils"
)

const (
	defaultRecent = 20
	maxRecent     = 100
)

type AnalysisHandler struct {
	log        *zap.SugaredLogger
	analysisUC *analysisuc.AnalysisUseCase
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewAnalysisHandler(log *zap.SugaredLogger, analysisUC *analysisuc.AnalysisUseCase) *AnalysisHandler {
	return &AnalysisHandler{
		log:        log,
		analysisUC: analysisUC,
	}
}

func (h *AnalysisHandler) Routes(r chi.Router) {
	r.Post("/recognize", h.HandleRecognize)
	r.Post("/recognize/batch", h.HandleRecognizeBatch)
	r.Post("/explain", h.HandleExplain)
	r.Get("/analyses", h.HandleRecent)
	r.Get("/analyses/{id}", h.HandleGetAnalysis)
	r.Get("/patterns", h.HandlePatterns)
	r.Get("/ws/recognize", h.HandleRecognizeFeed)
}

func (h *AnalysisHandler) HandleRecognize(w http.ResponseWriter, r *http.Request) {
	var req domain.RecognizeRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Debugw("bad recognize request", "error", err)
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.analysisUC.Analyze(r.Context(), req.SFEN)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, result)
}

func (h *AnalysisHandler) HandleRecognizeBatch(w http.ResponseWriter, r *http.Request) {
	var req domain.BatchRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Debugw("bad batch request", "error", err)
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	results, err := h.analysisUC.AnalyzeBatch(r.Context(), req.Positions)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, domain.BatchResponse{Analyses: results})
}

func (h *AnalysisHandler) HandleExplain(w http.ResponseWriter, r *http.Request) {
	var req domain.ExplainRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Debugw("bad explain request", "error", err)
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	ev, err := h.analysisUC.Explain(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, ev)
}

func (h *AnalysisHandler) HandleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	result, err := h.analysisUC.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, result)
}

func (h *AnalysisHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecent
	if text := r.URL.Query().Get("limit"); text != "" {
		n, err := strconv.Atoi(text)
		if err != nil || n <= 0 {
			httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxRecent)
	}

	results, err := h.analysisUC.Recent(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, results)
}

func (h *AnalysisHandler) HandlePatterns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	summaries, err := h.analysisUC.Patterns(q.Get("family"), q.Get("category"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, summaries)
}

// HandleRecognizeFeed answers every websocket message with one analysis. A
// message is either a bare SFEN or a JSON recognize request.
func (h *AnalysisHandler) HandleRecognizeFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorw("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debugw("websocket read ended", "error", err)
			}
			return
		}

		status, body := http.StatusOK, any(nil)
		result, err := h.analysisUC.Analyze(r.Context(), feedSFEN(msg))
		if err != nil {
			status = statusFor(err)
			body = httpresponse.ErrorResponse{ErrorDescription: err.Error()}
		} else {
			body = result
		}

		frame, err := httpresponse.MarshalStatusJson(status, body)
		if err != nil {
			h.log.Errorw("failed to encode websocket frame", "error", err)
			return
		}
		if err = conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			h.log.Debugw("websocket write failed", "error", err)
			return
		}
	}
}

func feedSFEN(msg []byte) string {
	text := strings.TrimSpace(string(msg))
	if strings.HasPrefix(text, "{") {
		var req domain.RecognizeRequest
		if err := json.Unmarshal(msg, &req); err == nil {
			return req.SFEN
		}
	}
	return text
}

func (h *AnalysisHandler) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Errorw("request failed", "error", err)
		httpresponse.WriteErrorWithStatus(w, status, "Internal server error")
		return
	}
	h.log.Debugw("request rejected", "status", status, "error", err)
	httpresponse.WriteErrorWithStatus(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, appErrors.ErrInvalidSFEN),
		errors.Is(err, appErrors.ErrInvalidSide),
		errors.Is(err, appErrors.ErrInvalidSquare),
		errors.Is(err, appErrors.ErrInvalidPiece),
		errors.Is(err, appErrors.ErrUnknownFamily),
		errors.Is(err, appErrors.ErrBatchTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, appErrors.ErrPatternNotFound),
		errors.Is(err, appErrors.ErrAnalysisNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
