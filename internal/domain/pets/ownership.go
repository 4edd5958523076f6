package pets

import (
	"context"
	"strings"
)

// SameUser compara identidades por valor; un id vacío nunca matchea.
func SameUser(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	return a != "" && a == b
}

func (p Pet) IsOwnedBy(userID string) bool   { return SameUser(p.OwnerUserID, userID) }
func (p Pet) IsAdoptedBy(userID string) bool { return SameUser(p.AdopterUserID, userID) }

// OwnerOf expone el ownerUserID de una mascota.
// Se usa para evitar ciclos de imports entre módulos (pets <-> history).
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.OwnerUserID, nil
}
