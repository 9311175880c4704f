package web

import "net/http"

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexPage))
}

// indexPage is the client bootstrap: render pushed snapshots onto a
// canvas and send toggle/playpause/reset events back.
const indexPage = `<!DOCTYPE html>
<html>
<head>
<title>lifegrid</title>
<style>
  body { background: #0d0d0d; color: #ddd; font-family: monospace; }
  #status { margin: 8px 0; }
  canvas { image-rendering: pixelated; cursor: crosshair; }
</style>
</head>
<body>
<div id="status">connecting&hellip;</div>
<canvas id="grid"></canvas>
<div>click: toggle cell &middot; space/s: play/pause &middot; r: reset</div>
<script>
const SCALE = 24;
const canvas = document.getElementById("grid");
const status = document.getElementById("status");
const ctx = canvas.getContext("2d");
const ws = new WebSocket("ws://" + location.host + "/ws");

let cols = 0, rows = 0;

ws.onmessage = (msg) => {
  const snap = JSON.parse(msg.data);
  if (snap.width !== cols || snap.height !== rows) {
    cols = snap.width;
    rows = snap.height;
    canvas.width = cols * SCALE;
    canvas.height = rows * SCALE;
  }
  status.textContent = "State: " + (snap.running ? "Playing" : "Stopped") +
    "  gen " + snap.generation;
  ctx.fillStyle = "#ffffff";
  ctx.fillRect(0, 0, canvas.width, canvas.height);
  for (const cell of snap.cells || []) {
    ctx.fillStyle = cell.color;
    ctx.fillRect(cell.x * SCALE, cell.y * SCALE, SCALE, SCALE);
  }
};

ws.onclose = () => { status.textContent = "disconnected"; };

canvas.addEventListener("click", (e) => {
  const rect = canvas.getBoundingClientRect();
  const x = Math.floor((e.clientX - rect.left) / SCALE);
  const y = Math.floor((e.clientY - rect.top) / SCALE);
  ws.send(JSON.stringify({type: "toggle", x: x, y: y}));
});

document.addEventListener("keydown", (e) => {
  if (e.key === " " || e.key === "s") {
    e.preventDefault();
    ws.send(JSON.stringify({type: "playpause"}));
  } else if (e.key === "r") {
    ws.send(JSON.stringify({type: "reset"}));
  }
});
</script>
</body>
</html>
`
