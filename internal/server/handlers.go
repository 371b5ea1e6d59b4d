package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"anarchyauth/internal/crypto"
	"anarchyauth/internal/domain"
	"anarchyauth/internal/imaging"
)

const (
	uploadField     = "iris_image"
	jsonBodyLimit   = 1 << 20
	multipartMemory = 32 << 20

	msgNoFile       = "No file uploaded"
	msgNoFileChosen = "No file selected"
	msgBadFileType  = "Invalid file type. Please upload PNG, JPG, BMP, or TIFF"
)

type processResponse struct {
	Error          *string `json:"error"`
	SessionID      string  `json:"session_id"`
	PublicKey      string  `json:"public_key"`
	PrivateKey     string  `json:"private_key"`
	Method         string  `json:"method"`
	Fingerprint    string  `json:"fingerprint"`
	Warning        string  `json:"warning,omitempty"`
	IrisCodesCount int     `json:"iris_codes_count,omitempty"`
}

type signRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type signResponse struct {
	Error         *string `json:"error"`
	SignedMessage string  `json:"signed_message"`
	Signature     string  `json:"signature"`
	MessageHash   string  `json:"message_hash"`
}

type verifyRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

type verifyResponse struct {
	Error   *string `json:"error"`
	Valid   bool    `json:"valid"`
	Message string  `json:"message"`
}

type healthResponse struct {
	Status         string `json:"status"`
	IrisLibrary    bool   `json:"iris_library"`
	ActiveSessions int    `json:"active_sessions"`
}

func (s *Server) handleProcessIris(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, err)
			return
		}
		writeFailure(w, http.StatusBadRequest, msgNoFile, kindInvalidUpload)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, hdr, err := r.FormFile(uploadField)
	if err != nil {
		// A part sent with an empty filename is parsed as a plain value.
		if _, ok := r.MultipartForm.Value[uploadField]; ok {
			writeFailure(w, http.StatusBadRequest, msgNoFileChosen, kindInvalidUpload)
			return
		}
		writeFailure(w, http.StatusBadRequest, msgNoFile, kindInvalidUpload)
		return
	}
	defer file.Close()

	if hdr.Filename == "" {
		writeFailure(w, http.StatusBadRequest, msgNoFileChosen, kindInvalidUpload)
		return
	}
	if !imaging.Allowed(hdr.Filename) {
		writeFailure(w, http.StatusBadRequest, msgBadFileType, kindInvalidUpload)
		return
	}

	data, err := readUpload(file)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	d, err := s.identity.DeriveFromImage(r.Context(), hdr.Filename, data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.metrics.Derived(d.Method.String())

	writeJSON(w, processResponse{
		SessionID:      d.SessionID.String(),
		PublicKey:      crypto.Hex(d.KeyPair.Public[:]),
		PrivateKey:     crypto.Hex(d.KeyPair.Private[:]),
		Method:         d.Method.String(),
		Fingerprint:    d.Fingerprint.String(),
		Warning:        d.Warning,
		IrisCodesCount: d.IrisCodesCount,
	})
}

func readUpload(f multipart.File) ([]byte, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageLoadFailed, err)
	}
	return data, nil
}

func (s *Server) handleDownloadKeys(w http.ResponseWriter, r *http.Request) {
	id := domain.SessionID(r.PathValue("session_id"))
	keyType := domain.KeyType(r.PathValue("key_type"))

	art, err := s.export.Export(id, keyType)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", art.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", art.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(art.Content)
}

func (s *Server) handleSign(w http.ResponseWriter, r *http.Request) {
	var req signRequest
	if err := decodeJSON(w, r, jsonBodyLimit, &req); err != nil {
		s.badJSON(w, r, err)
		return
	}
	signed, err := s.signing.Sign(domain.SessionID(req.SessionID), req.Message)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.metrics.Signed()
	writeJSON(w, signResponse{
		SignedMessage: signed.Armored,
		Signature:     signed.SignatureHex,
		MessageHash:   signed.MessageHash,
	})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := decodeJSON(w, r, jsonBodyLimit, &req); err != nil {
		s.badJSON(w, r, err)
		return
	}
	v, err := s.signing.Verify(domain.SessionID(req.SessionID), req.Message, req.Signature)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.metrics.Verified(v.Valid)
	msg := "Signature is invalid"
	if v.Valid {
		msg = "Signature is valid"
	}
	writeJSON(w, verifyResponse{Valid: v.Valid, Message: msg})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	s.sessions.Delete(domain.SessionID(r.PathValue("session_id")))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	iris := false
	if s.iris != nil {
		iris = s.iris(r.Context())
	}
	writeJSON(w, healthResponse{
		Status:         "ok",
		IrisLibrary:    iris,
		ActiveSessions: s.sessions.Len(),
	})
}

func (s *Server) badJSON(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		s.writeError(w, r, err)
		return
	}
	writeFailure(w, http.StatusBadRequest, "invalid JSON body: "+err.Error(), kindInvalidRequest)
}
