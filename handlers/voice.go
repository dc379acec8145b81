package handlers

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"panditseva/services/speech"
	"panditseva/utils"
)

const (
	MaxAudioFileSize = 5 * 1024 * 1024 // 5MB
	AllowedExtension = ".wav"
)

var Transcriber speech.Transcriber

type waveHeader struct {
	RiffTag       [4]byte
	FileSize      uint32
	WaveTag       [4]byte
	FmtTag        [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

func parseWaveHeader(data []byte) (*waveHeader, error) {
	if len(data) < 44 {
		return nil, errors.New("invalid WAV header length")
	}
	var header waveHeader
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if string(header.RiffTag[:]) != "RIFF" || string(header.WaveTag[:]) != "WAVE" {
		return nil, errors.New("not a RIFF/WAVE file")
	}
	return &header, nil
}

func validateWave(data []byte) error {
	header, err := parseWaveHeader(data)
	if err != nil {
		return err
	}
	if header.AudioFormat != 1 {
		return fmt.Errorf("expected PCM audio, got format %d", header.AudioFormat)
	}
	if header.NumChannels != 1 {
		return fmt.Errorf("expected mono audio, got %d channels", header.NumChannels)
	}
	if header.SampleRate != 16000 {
		return fmt.Errorf("expected 16kHz sample rate, got %d", header.SampleRate)
	}
	return nil
}

// VoiceSearchHandler transcribes a WAV upload and runs the same search as the
// text endpoint. Recognition failures come back as an empty transcript with a
// retry prompt rather than an error status.
func VoiceSearchHandler(c *gin.Context) {
	logger := utils.GetLogger()
	language := c.DefaultPostForm("language", "en-IN")

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "audio file is required", err.Error())
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != AllowedExtension {
		utils.JSONError(c, http.StatusBadRequest, "invalid file type",
			fmt.Sprintf("expected %s, got %s", AllowedExtension, ext))
		return
	}

	audioData, err := io.ReadAll(io.LimitReader(file, MaxAudioFileSize))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read audio file", err.Error())
		return
	}
	if err := validateWave(audioData); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid audio", err.Error())
		return
	}

	transcript, err := Transcriber.Transcribe(c.Request.Context(), audioData, language)
	// Fewer than 3 runes is treated as an unusable transcript.
	if err != nil || utf8.RuneCountInString(strings.TrimSpace(transcript)) < 3 {
		if err != nil {
			logger.Warn("speech transcription failed", zap.Error(err))
		}
		c.JSON(http.StatusOK, gin.H{
			"transcript": "",
			"message":    "Could not understand the audio. Please try again.",
		})
		return
	}

	result, err := SearchService.Search(c.Request.Context(), transcript, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transcript": transcript,
		"result":     result,
	})
}
