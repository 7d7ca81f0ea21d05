package plugin

import "strings"

// message is one per-item verdict with its explanation.
type message struct {
	status Status
	text   string
}

// Collector accumulates per-item verdicts and perfdata across one check's
// evaluation loop. The zero value is ready to use; Finalize is called exactly
// once at the end.
type Collector struct {
	messages []message
	perfdata []PerfData
}

// Add records one per-item verdict. Messages are kept in insertion order and
// never removed.
func (c *Collector) Add(status Status, text string) {
	c.messages = append(c.messages, message{status: status, text: text})
}

// AddPerfData attaches a perfdata point to the result.
func (c *Collector) AddPerfData(pd PerfData) {
	c.perfdata = append(c.perfdata, pd)
}

// Finalize computes the overall verdict as the highest severity among all
// recorded messages, OK when none were recorded, and joins the message texts
// in insertion order.
func (c *Collector) Finalize() *Result {
	status := StatusOK
	texts := make([]string, 0, len(c.messages))
	for _, m := range c.messages {
		status = Worse(status, m.status)
		if m.text != "" {
			texts = append(texts, m.text)
		}
	}
	return &Result{
		Status:   status,
		Message:  strings.Join(texts, ", "),
		PerfData: c.perfdata,
	}
}
