package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/NickMcConnell/FAangband-sub006/internal/design"
	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
	"github.com/NickMcConnell/FAangband-sub006/internal/logger"
	"github.com/NickMcConnell/FAangband-sub006/internal/registry"
	"github.com/NickMcConnell/FAangband-sub006/internal/repository"
	"github.com/NickMcConnell/FAangband-sub006/internal/rng"
)

// PreviewRequest asks for one item designed on the spot. Kind wins over
// Category when both are set. A zero Seed means a random one is drawn.
type PreviewRequest struct {
	Kind      string `json:"kind,omitempty" validate:"omitempty,max=64"`
	Category  string `json:"category,omitempty" validate:"required_without=Kind,equipcategory"`
	Depth     int    `json:"depth,omitempty" validate:"min=0,max=127"`
	Potential int    `json:"potential,omitempty" validate:"min=0"`
	Seed      int64  `json:"seed,omitempty"`
}

// PreviewResponse carries the designed item and the seed that reproduces it.
type PreviewResponse struct {
	Seed int64                     `json:"seed"`
	Item repository.ArtifactRecord `json:"item"`
}

// HandlePreviewItem designs a single item without persisting it.
func HandlePreviewItem(svc design.Service, kinds *registry.KindTable) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PreviewRequest
		if err := DecodeAndValidateRequest(r, w, &req, "preview"); err != nil {
			return
		}

		dreq := design.Request{Depth: req.Depth, Potential: req.Potential}
		if req.Kind != "" {
			kind, err := kinds.KindByName(req.Kind)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgUnknownKind)
				return
			}
			dreq.Kind = kind
		} else {
			cat, ok := domain.ParseEquipCategory(req.Category)
			if !ok {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
				return
			}
			dreq.Category = cat
		}

		seed := req.Seed
		if seed == 0 {
			seed = rng.RandomSeed()
		}

		art, err := svc.DesignItem(r.Context(), rng.NewQuick(seed), dreq)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, PreviewResponse{
			Seed: seed,
			Item: repository.NewArtifactRecord(art),
		})
	}
}

// GenerateRequest asks for a full stored batch.
type GenerateRequest struct {
	Seed     int64 `json:"seed"`
	Count    int   `json:"count" validate:"required,min=1,max=10000"`
	MaxDepth int   `json:"max_depth,omitempty" validate:"min=0,max=127"`
}

// GenerateResponse summarizes the stored run.
type GenerateResponse struct {
	RunID uuid.UUID `json:"run_id"`
	Seed  int64     `json:"seed"`
	Count int       `json:"count"`
}

// HandleGenerateRun designs a seeded batch and stores it.
func HandleGenerateRun(svc design.Service, repo repository.Run) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "generate run"); err != nil {
			return
		}
		if req.Seed == 0 {
			req.Seed = rng.RandomSeed()
		}

		log := logger.FromContext(r.Context())

		run, err := svc.DesignBatch(r.Context(), req.Seed, req.Count, req.MaxDepth)
		if err != nil {
			log.Error("Batch design failed", "error", err, "seed", req.Seed)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		if err := repo.SaveRun(r.Context(), run); err != nil {
			log.Error("Run storage failed", "error", err, "run_id", run.ID)
			respondError(w, http.StatusInternalServerError, ErrMsgSaveRunFailed)
			return
		}

		respondJSON(w, http.StatusCreated, GenerateResponse{
			RunID: run.ID,
			Seed:  run.Seed,
			Count: len(run.Items),
		})
	}
}

// HandleListRuns returns summaries of stored runs, newest first.
func HandleListRuns(repo repository.Run) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "limit"))
				return
			}
			limit = n
		}

		summaries, err := repo.ListRuns(r.Context(), limit)
		if err != nil {
			logger.FromContext(r.Context()).Error("Run listing failed", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgListRunFailed)
			return
		}
		if summaries == nil {
			summaries = []domain.RunSummary{}
		}

		respondJSON(w, http.StatusOK, summaries)
	}
}

// RunResponse carries a stored run with flattened item records.
type RunResponse struct {
	ID    uuid.UUID                   `json:"id"`
	Seed  int64                       `json:"seed"`
	Items []repository.ArtifactRecord `json:"items"`
}

// HandleGetRun returns one stored run by ID.
func HandleGetRun(repo repository.Run) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRunID)
			return
		}

		run, err := repo.GetRun(r.Context(), id)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		resp := RunResponse{
			ID:    run.ID,
			Seed:  run.Seed,
			Items: make([]repository.ArtifactRecord, len(run.Items)),
		}
		for i, art := range run.Items {
			resp.Items[i] = repository.NewArtifactRecord(art)
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
