package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"cardd/internal/emotion"
	"cardd/internal/flashcard"
	"cardd/internal/imagestore"
	"cardd/internal/navigation"
	"cardd/internal/quiz"
	"cardd/internal/viewmodel"
	"cardd/views/components"
	"cardd/views/pages"
)

func (h *Handler) currentScreen() viewmodel.Screen {
	return buildScreen(h.app.Snapshot(), h.images.MaxBytes())
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.AppPage(viewmodel.Page{
		Title:  pageTitle,
		Screen: h.currentScreen(),
	}))
}

func (h *Handler) screenFragment(w http.ResponseWriter, r *http.Request) {
	render(w, r, components.Screen(h.currentScreen()))
}

func (h *Handler) open(w http.ResponseWriter, r *http.Request) {
	screen, err := navigation.ParseScreen(chi.URLParam(r, "screen"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := h.app.Open(screen); err != nil {
		h.log.WithError(err).WithField("screen", screen).Warn("open screen rejected")
		if errors.Is(err, quiz.ErrEmptyPool) {
			http.Error(w, "no flashcards available", http.StatusConflict)
			return
		}
		// Stale page (another tab already moved on); show the current screen.
	}
	done(w, r)
}

func (h *Handler) back(w http.ResponseWriter, r *http.Request) {
	h.app.Back()
	done(w, r)
}

func (h *Handler) answer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	option := r.FormValue("option")
	if _, err := h.app.Answer(option); err != nil {
		// Double submits and answers racing a timer land here; the page
		// simply re-renders the current state.
		h.log.WithError(err).WithField("option", option).Debug("answer ignored")
	}
	done(w, r)
}

func (h *Handler) dismiss(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Dismiss(); err != nil {
		h.log.WithError(err).Debug("dismiss ignored")
	}
	done(w, r)
}

func (h *Handler) selectEmotion(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "emotion")
	if err := h.app.SelectEmotion(key); err != nil {
		if errors.Is(err, emotion.ErrUnknownEmotion) {
			http.NotFound(w, r)
			return
		}
		h.log.WithError(err).WithField("emotion", key).Debug("select emotion ignored")
	}
	done(w, r)
}

func (h *Handler) createFlashcard(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.images.MaxBytes()+1<<20)
	if err := r.ParseMultipartForm(h.images.MaxBytes()); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			// The body was cut off, so none of the fields survive.
			h.log.WithField("limit", tooLarge.Limit).Warn("custom flashcard body too large")
			h.renderCustomProblems(w, r, flashcard.Draft{}, []string{imageProblem(imagestore.ErrTooLarge)})
			return
		}
		h.log.WithError(err).Warn("parse custom flashcard form")
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	draft := flashcard.Draft{
		Prompt:  r.FormValue("prompt"),
		Options: [3]string{r.FormValue("option1"), r.FormValue("option2"), r.FormValue("option3")},
		Correct: r.FormValue("correct"),
	}

	image, err := h.storeUpload(r)
	if err != nil {
		h.log.WithError(err).Warn("custom flashcard image rejected")
		h.renderCustomProblems(w, r, draft, []string{imageProblem(err)})
		return
	}
	draft.Image = image

	card, err := h.app.AddFlashcard(draft)
	if err != nil {
		var verr *flashcard.ValidationError
		if errors.As(err, &verr) {
			h.renderCustomProblems(w, r, draft, verr.Problems)
			return
		}
		h.log.WithError(err).Debug("add flashcard ignored")
		done(w, r)
		return
	}
	h.log.WithFields(logrus.Fields{"card_id": card.ID}).Debug("flashcard created")
	done(w, r)
}

// storeUpload keeps the optional "image" file. No file means no image.
func (h *Handler) storeUpload(r *http.Request) (flashcard.ImageRef, error) {
	file, _, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return flashcard.ImageRef{}, nil
		}
		return flashcard.ImageRef{}, err
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, h.images.MaxBytes()+1))
	if err != nil {
		return flashcard.ImageRef{}, err
	}
	if len(data) == 0 {
		return flashcard.ImageRef{}, nil
	}
	id, err := h.images.Put(data)
	if err != nil {
		return flashcard.ImageRef{}, err
	}
	return flashcard.External(id), nil
}

func imageProblem(err error) string {
	switch {
	case errors.Is(err, imagestore.ErrTooLarge):
		return "圖片太大"
	case errors.Is(err, imagestore.ErrUnsupportedImage):
		return "請選擇圖片檔案"
	}
	return "無法讀取圖片"
}

func (h *Handler) renderCustomProblems(w http.ResponseWriter, r *http.Request, d flashcard.Draft, problems []string) {
	data := newCustomScreen(h.app.Repository().Policy(), h.images.MaxBytes())
	data.Prompt = d.Prompt
	data.Options = d.Options
	data.Correct = d.Correct
	data.Problems = problems
	screen := viewmodel.Screen{Name: viewmodel.ScreenCustom, Custom: data}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	var component = pages.AppPage(viewmodel.Page{Title: pageTitle, Screen: screen})
	if strings.EqualFold(r.Header.Get("Hx-Request"), "true") {
		component = components.Screen(screen)
	}
	if err := component.Render(r.Context(), w); err != nil {
		h.log.WithError(err).Warn("render custom screen")
	}
}
