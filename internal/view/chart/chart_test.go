package chart

import (
	"errors"
	"testing"
)

type trackingHandle struct {
	renderer  *trackingRenderer
	destroyed bool
}

func (h *trackingHandle) Destroy() {
	h.destroyed = true
	h.renderer.live--
}

type trackingRenderer struct {
	live    int
	handles []*trackingHandle
	err     error
}

func (r *trackingRenderer) New(Spec) (Handle, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.live++
	h := &trackingHandle{renderer: r}
	r.handles = append(r.handles, h)
	return h, nil
}

func TestContextReplace_SingleLiveInstance(t *testing.T) {
	renderer := &trackingRenderer{}
	ctx := NewContext(renderer)

	for i := 0; i < 2; i++ {
		if err := ctx.Replace(Spec{Type: "bar"}); err != nil {
			t.Fatalf("replace %d failed: %v", i, err)
		}
	}

	if renderer.live != 1 {
		t.Fatalf("expected exactly 1 live instance, got %d", renderer.live)
	}
	if !renderer.handles[0].destroyed {
		t.Error("first handle was not destroyed before the second was created")
	}
	if renderer.handles[1].destroyed {
		t.Error("second handle must still be alive")
	}
}

func TestContextReplace_PublishesSpec(t *testing.T) {
	ctx := NewContext(&trackingRenderer{})

	if _, ok := ctx.Spec(); ok {
		t.Fatal("empty context must not expose a spec")
	}

	spec := Spec{
		Type:   "bar",
		Labels: []string{"01/03"},
		Datasets: []Dataset{
			{Label: "Entrada", Data: []float64{10}, BackgroundColor: "#3b82f6"},
		},
	}
	if err := ctx.Replace(spec); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	got, ok := ctx.Spec()
	if !ok {
		t.Fatal("expected a published spec")
	}
	if got.Type != "bar" || len(got.Datasets) != 1 || got.Datasets[0].Label != "Entrada" {
		t.Errorf("unexpected spec: %+v", got)
	}
}

func TestContextReplace_RendererFailureLeavesContextEmpty(t *testing.T) {
	renderer := &trackingRenderer{}
	ctx := NewContext(renderer)

	if err := ctx.Replace(Spec{Type: "bar"}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	renderer.err = errors.New("canvas gone")
	if err := ctx.Replace(Spec{Type: "bar"}); err == nil {
		t.Fatal("expected replace error")
	}

	if renderer.live != 0 {
		t.Errorf("old instance must have been destroyed, %d still live", renderer.live)
	}
	if _, ok := ctx.Spec(); ok {
		t.Error("failed replace must not leave a stale spec published")
	}
}

func TestContextClose(t *testing.T) {
	renderer := &trackingRenderer{}
	ctx := NewContext(renderer)

	if err := ctx.Replace(Spec{Type: "bar"}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	ctx.Close()
	if renderer.live != 0 {
		t.Errorf("close must destroy the live instance, %d still live", renderer.live)
	}
}
