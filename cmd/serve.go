package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/interval"
	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/session"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the tap api",
	Long:  `Serves the tap api`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var validate = validator.New()

// api holds what the handlers share. One api serves any number of
// concurrently open boards.
type api struct {
	store *session.Store
	board *fretboard.Fretboard
	flats bool
}

func NewRouter(store *session.Store, board *fretboard.Fretboard, flats bool) *mux.Router {
	a := &api{store: store, board: board, flats: flats}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/tap", a.handleTap).Methods("POST")
	router.HandleFunc("/sessions", a.handleListSessions).Methods("GET")
	router.HandleFunc("/sessions", a.handleCreateSession).Methods("POST")
	router.HandleFunc("/sessions/{id}", a.handleGetSession).Methods("GET")
	router.HandleFunc("/sessions/{id}", a.handleDeleteSession).Methods("DELETE")
	router.HandleFunc("/sessions/{id}/tap", a.handleSessionTap).Methods("POST")
	router.HandleFunc("/sessions/{id}/reset", a.handleReset).Methods("POST")
	router.HandleFunc("/sessions/{id}/mode", a.handleMode).Methods("PUT")
	router.HandleFunc("/sessions/{id}/midi", a.handleMidi).Methods("GET")
	router.HandleFunc("/sessions/{id}/board", a.handleBoard).Methods("GET")
	return router
}

func serve() error {
	router := NewRouter(session.NewStore(), newFretboard(), preferFlats)
	c := cors.New(cors.Options{
		AllowedOrigins: constants.GetAllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	})

	addr := fmt.Sprintf(":%d", constants.GetPort())
	slog.Info("serve: listening", "addr", addr, "frets", frets)
	return http.ListenAndServe(addr, c.Handler(router))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("serve: could not encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	slog.Debug("serve: request failed", "status", status, "err", err)
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrWrongMode):
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

func decodeBody(r *http.Request, v any) error {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.Wrap(err, "could not read request body")
	}
	if len(bytes.TrimSpace(reqBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(reqBody, v); err != nil {
		return errors.Wrap(err, "could not unmarshal request body")
	}
	return validate.Struct(v)
}

// tappedPitch resolves whichever of pitch, note or position was sent.
func (a *api) tappedPitch(req model.TapRequest) (model.Pitch, error) {
	given := 0
	if req.Pitch != nil {
		given++
	}
	if req.Note != "" {
		given++
	}
	if req.Position != nil {
		given++
	}
	if given != 1 {
		return 0, errors.New("exactly one of pitch, note or position is required")
	}

	switch {
	case req.Pitch != nil:
		return model.Pitch(*req.Pitch), nil
	case req.Note != "":
		return note.ParsePitch(req.Note)
	}
	return a.board.PitchAt(fretboard.Position{String: req.Position.String, Fret: req.Position.Fret})
}

func (a *api) toBody(sel model.Selection) model.SelectionBody {
	body := model.SelectionBody{Intervals: []int{}, Octaves: []int{}}
	if sel.IsEmpty() {
		return body
	}
	body.Root = note.Name(sel.Root, a.flats)
	body.ReferenceOctave = int(sel.ReferenceOctave)
	for _, v := range sel.Intervals {
		body.Intervals = append(body.Intervals, int(v))
	}
	for _, o := range sel.Octaves {
		body.Octaves = append(body.Octaves, int(o))
	}
	return body
}

func fromBody(body model.SelectionBody) (model.Selection, error) {
	if len(body.Intervals) == 0 && len(body.Octaves) == 0 {
		return model.Selection{}, nil
	}
	root, err := note.ParseClass(body.Root)
	if err != nil {
		return model.Selection{}, errors.Wrap(err, "root")
	}
	sel := model.Selection{Root: root, ReferenceOctave: model.Octave(body.ReferenceOctave)}
	for _, v := range body.Intervals {
		sel.Intervals = append(sel.Intervals, model.Interval(v))
	}
	for _, o := range body.Octaves {
		sel.Octaves = append(sel.Octaves, model.Octave(o))
	}
	if err := interval.Check(sel); err != nil {
		return model.Selection{}, errors.Wrap(err, "invalid state")
	}
	return sel, nil
}

func (a *api) response(sel model.Selection) model.SelectionResponse {
	notes := interval.Notes(sel, a.flats)
	return model.SelectionResponse{
		State:     interval.StateOf(sel).String(),
		Selection: a.toBody(sel),
		Notes:     notes,
		Labels:    interval.Labels(sel),
		Key:       chord.CreateChordKey(interval.Pitches(sel)),
	}
}

func (a *api) sessionResponse(sess session.Session) model.SelectionResponse {
	res := a.response(sess.Selection)
	res.SessionId = sess.Id
	res.Mode = sess.Mode
	return res
}

func (a *api) handleTap(w http.ResponseWriter, r *http.Request) {
	var input model.TapRequest
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := a.tappedPitch(input)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var sel model.Selection
	if input.State != nil {
		if sel, err = fromBody(*input.State); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, a.response(interval.ApplyTap(sel, p)))
}

func (a *api) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	input := model.ModeRequest{Mode: model.ViewInterval}
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sess, err := a.store.Create(input.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	slog.Info("serve: session created", "id", sess.Id, "mode", sess.Mode)
	writeJSON(w, http.StatusCreated, a.sessionResponse(sess))
}

func (a *api) handleListSessions(w http.ResponseWriter, r *http.Request) {
	res := []model.SelectionResponse{}
	for _, sess := range a.store.List() {
		res = append(res, a.sessionResponse(sess))
	}
	writeJSON(w, http.StatusOK, res)
}

func (a *api) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := a.store.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, a.sessionResponse(sess))
}

func (a *api) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := a.store.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) handleSessionTap(w http.ResponseWriter, r *http.Request) {
	var input model.TapRequest
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if input.State != nil {
		writeError(w, http.StatusBadRequest, errors.New("sessions keep their own state"))
		return
	}
	p, err := a.tappedPitch(input)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sess, err := a.store.Tap(mux.Vars(r)["id"], p)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, a.sessionResponse(sess))
}

func (a *api) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, err := a.store.Reset(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, a.sessionResponse(sess))
}

func (a *api) handleMode(w http.ResponseWriter, r *http.Request) {
	var input model.ModeRequest
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sess, err := a.store.SetMode(mux.Vars(r)["id"], input.Mode)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, a.sessionResponse(sess))
}

func (a *api) handleMidi(w http.ResponseWriter, r *http.Request) {
	sess, err := a.store.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	var buf bytes.Buffer
	if err := midi.WriteSelection(&buf, sess.Selection); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", sess.Id+".mid"))
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("serve: could not write midi", "id", sess.Id, "err", err)
	}
}

func (a *api) handleBoard(w http.ResponseWriter, r *http.Request) {
	sess, err := a.store.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, a.board.Render(sess.Selection, a.flats))
}
