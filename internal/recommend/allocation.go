package recommend

// DistributeAcrossShips splits a total quantity across ships using
// remainder-first allocation: every ship receives quantity/len(ships), and
// the first quantity%len(ships) ships (in selection order) receive one
// extra unit. The per-ship shares always sum exactly to quantity. An empty
// ship list yields an empty allocation; callers validate ship selection
// before generation.
func DistributeAcrossShips(quantity int64, ships []string) map[string]int64 {
	allocation := make(map[string]int64, len(ships))
	if len(ships) == 0 {
		return allocation
	}

	n := int64(len(ships))
	base := quantity / n
	remainder := quantity % n

	for i, ship := range ships {
		share := base
		if int64(i) < remainder {
			share++
		}
		allocation[ship] = share
	}

	return allocation
}
