package server

func (s *Server) routes() {
	s.mux.HandleFunc("POST /process_iris", s.handleProcessIris)
	s.mux.HandleFunc("GET /download_keys/{key_type}/{session_id}", s.handleDownloadKeys)
	s.mux.HandleFunc("POST /sign", s.handleSign)
	s.mux.HandleFunc("POST /verify", s.handleVerify)
	s.mux.HandleFunc("DELETE /sessions/{session_id}", s.handleDeleteSession)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	if s.cfg.Metrics && s.metrics != nil {
		s.mux.Handle("GET /metrics", s.metrics.Handler())
	}
}

func exemptFromLimit(path string) bool {
	return path == "/health" || path == "/metrics"
}
