package board

// Default returns the starter board a fresh install opens with: a root
// anchor and the usual life areas around it.
func Default() *Document {
	d := New()

	d, me := d.AddNode(Node{X: 40, Y: 12, Label: "ME", Kind: KindRoot, Color: "#00ffc8", Icon: "◉"})
	d, work := d.AddNode(Node{X: 10, Y: 4, Label: "Deep Work", Kind: KindCategory, Color: "#00ccee"})
	d, health := d.AddNode(Node{X: 10, Y: 20, Label: "Health", Kind: KindCategory, Color: "#44ff88"})
	d, learn := d.AddNode(Node{X: 72, Y: 4, Label: "Learning", Kind: KindCategory, Color: "#ddaa44"})
	d, rest := d.AddNode(Node{X: 72, Y: 20, Label: "Rest", Kind: KindCategory, Color: "#cc88ff"})

	d = d.Connect(me, work)
	d = d.Connect(me, health)
	d = d.Connect(me, learn)
	d = d.Connect(me, rest)

	return d
}
