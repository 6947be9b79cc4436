package clock

import (
	"time"

	"github.com/navalha-app/booking-api/internal/timezone"
)

// Clock injeta o "agora" nas regras de negócio para que os testes
// possam congelar o tempo. Now() sempre devolve o horário já no
// timezone da barbearia.
type Clock interface {
	Now() time.Time
}

type shopClock struct {
	loc *time.Location
}

func ForShop(tz string) Clock {
	return &shopClock{loc: timezone.Location(tz)}
}

func (c *shopClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed é um relógio congelado, usado em testes.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}
