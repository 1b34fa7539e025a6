package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/midiseq/db"
	"github.com/jsphweid/midiseq/midi"
	"github.com/jsphweid/midiseq/model"
	"github.com/jsphweid/midiseq/smf"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the decoder over HTTP",
	Long:  `Serves the decoder over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

// HandleDecode decodes a raw SMF request body into a JSON sequence. The
// optional X-Filename header attaches catalog metadata when a catalog
// is configured.
func HandleDecode(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, fmt.Errorf("could not read request body: %w", err))
		return
	}

	seq, err := midi.Decode(body)
	if err != nil {
		status := 400
		if errors.Is(err, smf.ErrSMPTETiming) || errors.Is(err, smf.ErrUnsupportedFormat) {
			status = 422
		}
		writeError(w, status, err)
		return
	}

	res := model.DecodeResponse{
		Id:       uuid.New().String(),
		Filename: r.Header.Get("X-Filename"),
		Sequence: seq,
	}
	if res.Filename != "" {
		metadatas := db.GetMidiMetadatas([]string{res.Filename})
		if m, ok := metadatas[res.Filename]; ok {
			res.Metadata = &m
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/decode", HandleDecode).Methods("POST")
	handler := cors.Default().Handler(router)
	fmt.Printf("Listening on %v\n", serveAddr)
	log.Fatal(http.ListenAndServe(serveAddr, handler))
}
