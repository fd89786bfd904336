package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"spectral-server/internal/domain"
)

const (
	MagicHeader string = `HHJL` // 4 байта
	Version1    uint32 = 1
)

// JournalFileHeader — точное представление заголовка файла в памяти.
// binary.Write пишет это целиком: тут нет слайсов и строк, только числа и массивы.
type JournalFileHeader struct {
	Magic      [4]byte // 4 байта
	Version    uint32  // 4 байта
	Seed       int64   // 8 байт
	Timestamp  int64   // 8 байт
	EventCount int32   // 4 байта
	RunIDLen   uint8   // 1 байт
}

// EventHeader — заголовок каждой записи события.
type EventHeader struct {
	Seq       int64  // 8
	Timestamp int64  // 8
	Type      uint8  // 1
	ActorLen  uint8  // 1
	RoomLen   uint8  // 1
	DetailLen uint16 // 2
}

type JournalService struct {
	SaveDir string
}

func NewJournalService(dir string) *JournalService {
	// Создаем папку если нет
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}
	return &JournalService{SaveDir: dir}
}

func (s *JournalService) Save(session *domain.JournalSession) (string, error) {
	filename := fmt.Sprintf("hunt_%d_%s.hhjl", session.Seed, session.RunID)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeBinary(f, session); err != nil {
		return "", err
	}
	return path, nil
}

func writeBinary(w io.Writer, s *domain.JournalSession) error {
	events := s.Snapshot()

	runID := []byte(s.RunID)
	if len(runID) > 255 {
		return fmt.Errorf("run id too long: %d", len(runID))
	}

	// 1. Пишем ГЛОБАЛЬНЫЙ ЗАГОЛОВОК одной командой
	header := JournalFileHeader{
		Version:    Version1,
		Seed:       s.Seed,
		Timestamp:  s.Timestamp,
		EventCount: int32(len(events)),
		RunIDLen:   uint8(len(runID)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(runID); err != nil {
		return err
	}

	// 2. Пишем события
	for _, e := range events {
		actor := []byte(e.Actor)
		room := []byte(e.Room)
		detail := []byte(e.Detail)

		if len(actor) > 255 || len(room) > 255 {
			return fmt.Errorf("actor/room name too long in event %d", e.Seq)
		}
		if len(detail) > 65535 {
			return fmt.Errorf("detail too long in event %d: %d", e.Seq, len(detail))
		}

		eh := EventHeader{
			Seq:       e.Seq,
			Timestamp: e.Timestamp,
			Type:      uint8(e.Type),
			ActorLen:  uint8(len(actor)),
			RoomLen:   uint8(len(room)),
			DetailLen: uint16(len(detail)),
		}

		if err := binary.Write(w, binary.LittleEndian, &eh); err != nil {
			return err
		}
		if _, err := w.Write(actor); err != nil {
			return err
		}
		if _, err := w.Write(room); err != nil {
			return err
		}
		if len(detail) > 0 {
			if _, err := w.Write(detail); err != nil {
				return err
			}
		}
	}

	return nil
}
