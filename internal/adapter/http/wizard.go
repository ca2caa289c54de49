package httpadapter

import (
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"dha-marketplace/internal/core/domain"
	"dha-marketplace/internal/core/port"
)

const msgWizardFailed = "Failed to update the campaign wizard"

// imageField is the multipart field carrying ad artwork.
const imageField = "image"

type formatRequest struct {
	AdType domain.AdType `json:"adType"`
}

type durationRequest struct {
	Duration domain.Duration `json:"duration"`
}

type paymentRequest struct {
	PaymentMethod domain.PaymentMethod  `json:"paymentMethod"`
	PaymentData   domain.PaymentDetails `json:"paymentData"`
}

// handleWizardOpen starts or resumes a session. Mirrored view state is read
// from the query string, so a copied wizard URL reopens the same view.
func (h *Handler) handleWizardOpen(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Wizard.Open(r.Context(), r.URL.Query())
	if err != nil {
		h.writeError(w, r, err, msgWizardFailed)
		return
	}
	h.writeJSON(w, http.StatusCreated, v)
}

func (h *Handler) handleWizardGet(w http.ResponseWriter, r *http.Request) {
	h.respondView(w, r)(h.svc.Wizard.Get(r.Context(), sessionParam(r)))
}

// handleWizardClose discards the session.
func (h *Handler) handleWizardClose(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Wizard.Close(r.Context(), sessionParam(r)); err != nil {
		h.writeError(w, r, err, msgWizardFailed)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleWizardNext advances one step. Leaving the content step with
// invalid fields answers 422 with a message per field.
func (h *Handler) handleWizardNext(w http.ResponseWriter, r *http.Request) {
	h.respondView(w, r)(h.svc.Wizard.Next(r.Context(), sessionParam(r)))
}

func (h *Handler) handleWizardPrev(w http.ResponseWriter, r *http.Request) {
	h.respondView(w, r)(h.svc.Wizard.Prev(r.Context(), sessionParam(r)))
}

func (h *Handler) handleWizardGoTo(w http.ResponseWriter, r *http.Request) {
	step, err := strconv.Atoi(chi.URLParam(r, "step"))
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, "invalid step")
		return
	}
	h.respondView(w, r)(h.svc.Wizard.GoTo(r.Context(), sessionParam(r), domain.Step(step)))
}

func (h *Handler) handleWizardFormat(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	h.respondView(w, r)(h.svc.Wizard.SelectAdType(r.Context(), sessionParam(r), req.AdType))
}

func (h *Handler) handleWizardDuration(w http.ResponseWriter, r *http.Request) {
	var req durationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	h.respondView(w, r)(h.svc.Wizard.SelectDuration(r.Context(), sessionParam(r), req.Duration))
}

func (h *Handler) handleWizardContent(w http.ResponseWriter, r *http.Request) {
	var req domain.FormData
	if !h.decodeJSON(w, r, &req) {
		return
	}
	h.respondView(w, r)(h.svc.Wizard.UpdateContent(r.Context(), sessionParam(r), req))
}

// handleWizardImage accepts artwork as multipart form data. Only the image
// header is decoded; dimensions and size are checked against the selected
// format.
func (h *Handler) handleWizardImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)
	file, fh, err := r.FormFile(imageField)
	if err != nil {
		var sizeErr *http.MaxBytesError
		if errors.As(err, &sizeErr) {
			h.writeError(w, r, err, msgWizardFailed)
			return
		}
		h.writeMessage(w, http.StatusBadRequest, "Please choose an image to upload")
		return
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		h.writeError(w, r, domain.FieldErrors{"uploadedImage": "Please upload a valid image file"}, msgWizardFailed)
		return
	}
	img := port.ImageUpload{Name: fh.Filename, Size: fh.Size, Width: cfg.Width, Height: cfg.Height}
	h.respondView(w, r)(h.svc.Wizard.AttachImage(r.Context(), sessionParam(r), img))
}

func (h *Handler) handleWizardPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	h.respondView(w, r)(h.svc.Wizard.SetPayment(r.Context(), sessionParam(r), req.PaymentMethod, req.PaymentData))
}

// handleWizardSubmit validates the content and prices the draft.
func (h *Handler) handleWizardSubmit(w http.ResponseWriter, r *http.Request) {
	sub, err := h.svc.Wizard.Submit(r.Context(), sessionParam(r))
	if err != nil {
		h.writeError(w, r, err, "Failed to submit the campaign")
		return
	}
	h.writeJSON(w, http.StatusOK, sub)
}

// handleWizardComplete records the pending campaign.
func (h *Handler) handleWizardComplete(w http.ResponseWriter, r *http.Request) {
	pc, err := h.svc.Wizard.CompletePayment(r.Context(), sessionParam(r))
	if err != nil {
		h.writeError(w, r, err, "Failed to complete the payment")
		return
	}
	h.writeJSON(w, http.StatusCreated, pc)
}

// respondView returns a writer for the (view, error) pair every wizard
// operation yields.
func (h *Handler) respondView(w http.ResponseWriter, r *http.Request) func(*port.WizardView, error) {
	return func(v *port.WizardView, err error) {
		if err != nil {
			h.writeError(w, r, err, msgWizardFailed)
			return
		}
		h.writeJSON(w, http.StatusOK, v)
	}
}

func sessionParam(r *http.Request) string {
	return chi.URLParam(r, "session")
}
