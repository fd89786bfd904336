package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"spectral-server/internal/domain"
)

func (s *JournalService) Load(path string) (*domain.JournalSession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

func readBinary(r io.Reader) (*domain.JournalSession, error) {
	// 1. Читаем заголовок целиком
	var header JournalFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	runID := make([]byte, header.RunIDLen)
	if _, err := io.ReadFull(r, runID); err != nil {
		return nil, fmt.Errorf("failed to read run id: %w", err)
	}

	session := domain.NewJournalSession(string(runID), header.Seed, header.Timestamp)

	// 2. Читаем события
	for i := 0; i < int(header.EventCount); i++ {
		var eh EventHeader
		if err := binary.Read(r, binary.LittleEndian, &eh); err != nil {
			return nil, err
		}

		buf := make([]byte, int(eh.ActorLen)+int(eh.RoomLen)+int(eh.DetailLen))
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}

		actor := buf[:eh.ActorLen]
		room := buf[eh.ActorLen : int(eh.ActorLen)+int(eh.RoomLen)]
		detail := buf[int(eh.ActorLen)+int(eh.RoomLen):]

		session.Append(domain.Event{
			Seq:       eh.Seq,
			Type:      domain.EventType(eh.Type),
			Actor:     string(actor),
			Room:      string(room),
			Detail:    string(detail),
			Timestamp: eh.Timestamp,
		})
	}

	return session, nil
}
