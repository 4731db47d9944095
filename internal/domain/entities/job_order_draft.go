package entities

// JobOrderDraft is an in-progress job order being created or edited. It has no
// identity and no cached totals; both are assigned when the draft is saved.
//
// Every mutation returns a modified copy and leaves the receiver untouched, so
// the editing session can discard or undo freely. One draft type serves both
// the create and the edit flow.

type JobOrderDraft struct {
	Customer string         `json:"customer"`
	Address  string         `json:"address"`
	Make     string         `json:"make"`
	Plate    string         `json:"plate"`
	Phone    string         `json:"phone"`
	Mechanic string         `json:"mechanic"`
	Status   JobOrderStatus `json:"status"`
	Remarks  string         `json:"remarks"`
	Date     string         `json:"date"`

	WorkRequested []WorkItem  `json:"work_requested"`
	OilsAndFuels  []FluidItem `json:"oils_and_fuels"`
	Parts         []PartItem  `json:"parts"`
}

func (d JobOrderDraft) AddWorkItem(it WorkItem) JobOrderDraft {
	d.WorkRequested = append(cloneSlice(d.WorkRequested), it)
	return d
}

func (d JobOrderDraft) RemoveWorkItem(i int) JobOrderDraft {
	d.WorkRequested = removeAt(d.WorkRequested, i)
	return d
}

func (d JobOrderDraft) UpdateWorkItem(i int, it WorkItem) JobOrderDraft {
	d.WorkRequested = replaceAt(d.WorkRequested, i, it)
	return d
}

func (d JobOrderDraft) AddFluidItem(it FluidItem) JobOrderDraft {
	d.OilsAndFuels = append(cloneSlice(d.OilsAndFuels), it)
	return d
}

func (d JobOrderDraft) RemoveFluidItem(i int) JobOrderDraft {
	d.OilsAndFuels = removeAt(d.OilsAndFuels, i)
	return d
}

func (d JobOrderDraft) UpdateFluidItem(i int, it FluidItem) JobOrderDraft {
	d.OilsAndFuels = replaceAt(d.OilsAndFuels, i, it)
	return d
}

func (d JobOrderDraft) AddPartItem(it PartItem) JobOrderDraft {
	d.Parts = append(cloneSlice(d.Parts), it)
	return d
}

func (d JobOrderDraft) RemovePartItem(i int) JobOrderDraft {
	d.Parts = removeAt(d.Parts, i)
	return d
}

func (d JobOrderDraft) UpdatePartItem(i int, it PartItem) JobOrderDraft {
	d.Parts = replaceAt(d.Parts, i, it)
	return d
}

func cloneSlice[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func removeAt[T any](s []T, i int) []T {
	if i < 0 || i >= len(s) {
		return cloneSlice(s)
	}
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}

func replaceAt[T any](s []T, i int, v T) []T {
	if i < 0 || i >= len(s) {
		return cloneSlice(s)
	}
	out := cloneSlice(s)
	out[i] = v
	return out
}
