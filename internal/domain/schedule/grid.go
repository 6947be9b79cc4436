package schedule

// Grid gera os horários candidatos de início dentro de [start, end),
// espaçados exatamente durationMin minutos a partir de start, tais que
// início + duração <= end. Candidatos cuja faixa cruza a pausa são
// descartados.
//
// A função é pura: não filtra passado nem conflitos com outros
// agendamentos — isso é papel de quem resolve a disponibilidade.
func Grid(start, end TimeOfDay, durationMin int, brk *Range) []TimeOfDay {
	if durationMin <= 0 || start >= end {
		return nil
	}

	var out []TimeOfDay
	for cur := start; cur.Add(durationMin) <= end; cur = cur.Add(durationMin) {
		if brk != nil {
			slot := Range{Start: cur, End: cur.Add(durationMin)}
			if slot.Overlaps(*brk) {
				continue
			}
		}
		out = append(out, cur)
	}
	return out
}

// GridContains informa se t é um candidato exato da grade.
func GridContains(start, end TimeOfDay, durationMin int, brk *Range, t TimeOfDay) bool {
	for _, cand := range Grid(start, end, durationMin, brk) {
		if cand == t {
			return true
		}
	}
	return false
}
