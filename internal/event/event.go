// internal/event/event.go
package event

// EventType задаёт тип события
type EventType string

// Event передаётся подписчикам диспетчером
type Event struct {
	Type EventType
	Data interface{} // данные события, формат для каждого типа см. в types.go
}

// Listener получает события от диспетчера
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher доставляет события синхронно, в порядке подписки
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher создаёт пустой диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает listener на eventType
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает listener сразу на несколько типов
func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe отписывает listener от eventType
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Clear снимает все подписки. Вызывается при остановке матча, чтобы никто
// не реагировал на события после неё.
func (d *Dispatcher) Clear() {
	d.listeners = make(map[EventType][]Listener)
}

// Dispatch отправляет событие всем подписчикам его типа
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
