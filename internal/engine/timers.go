package engine

import (
	"container/heap"
	"time"

	"github.com/bbagher/tibiaclone/internal/domain"
)

// TimerItem обертка для элемента очереди приоритетов
type TimerItem struct {
	Cmd    domain.InternalCommand // Отложенная команда (респаун монстра)
	FireAt time.Time              // Момент срабатывания. Чем раньше, тем выше в куче.
	Index  int                    // Индекс в куче (нужен для heap.Fix)
}

// timerHeap реализует heap.Interface и хранит TimerItems
type timerHeap []*TimerItem

func (pq timerHeap) Len() int { return len(pq) }

func (pq timerHeap) Less(i, j int) bool {
	// Мы хотим MinHeap: раньше срабатывает - раньше выходит
	return pq[i].FireAt.Before(pq[j].FireAt)
}

func (pq timerHeap) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *timerHeap) Push(x interface{}) {
	n := len(*pq)
	item := x.(*TimerItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *timerHeap) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // избегаем утечки памяти
	item.Index = -1 // для безопасности
	*pq = old[0 : n-1]
	return item
}

// Timers - очередь отложенных команд игрового цикла. Не потокобезопасна:
// как и мир, принадлежит единственной горутине движка.
type Timers struct {
	pq timerHeap
}

// NewTimers создает пустую очередь.
func NewTimers() *Timers {
	t := &Timers{pq: make(timerHeap, 0)}
	heap.Init(&t.pq)
	return t
}

// Schedule ставит команду на момент at.
func (t *Timers) Schedule(at time.Time, cmd domain.InternalCommand) {
	heap.Push(&t.pq, &TimerItem{Cmd: cmd, FireAt: at})
}

// PopDue снимает все команды, чей срок наступил к моменту now,
// в порядке срабатывания.
func (t *Timers) PopDue(now time.Time) []domain.InternalCommand {
	var due []domain.InternalCommand
	for t.pq.Len() > 0 && !t.pq[0].FireAt.After(now) {
		item := heap.Pop(&t.pq).(*TimerItem)
		due = append(due, item.Cmd)
	}
	return due
}

// Len возвращает число ожидающих команд.
func (t *Timers) Len() int {
	return t.pq.Len()
}
