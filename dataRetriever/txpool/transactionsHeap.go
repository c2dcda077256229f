package txpool

// transactionsHeap orders the pooled transactions by priority, then by arrival order
type transactionsHeap []*pooledTransaction

func (h transactionsHeap) Len() int { return len(h) }

func (h transactionsHeap) Less(i, j int) bool {
	if h[i].valid.Priority != h[j].valid.Priority {
		return h[i].valid.Priority > h[j].valid.Priority
	}

	return h[i].arrival < h[j].arrival
}

func (h transactionsHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *transactionsHeap) Push(x interface{}) {
	*h = append(*h, x.(*pooledTransaction))
}

func (h *transactionsHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return item
}
