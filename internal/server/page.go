// internal/server/page.go
package server

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"shareloom/internal/panel"
)

// pageData feeds the panel page template.
type pageData struct {
	Title         string
	Placeholder   string
	CatalogMode   bool
	Stories       []panel.StoryView
	Presets       []string
	DefaultWidth  string
	DefaultHeight string
}

func (s *Server) servePanel(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	cat, loc := s.app.snapshot()
	title := s.app.cfg.Title
	if title == "" {
		title = "Share panel"
	}
	data := pageData{
		Title:         title,
		Placeholder:   loc.Get("share.select_story"),
		CatalogMode:   cat.Len() > 0,
		Stories:       panel.StoryViews(cat),
		Presets:       panel.PresetKeys(),
		DefaultWidth:  s.app.cfg.DefaultWidth,
		DefaultHeight: s.app.cfg.DefaultHeight,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	if err := panelTemplate.Execute(w, data); err != nil {
		s.log.Warn("panel page render failed", zap.Error(err))
	}
}

var panelTemplate = template.Must(template.New("panel").Parse(panelPageHTML))

const panelPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: sans-serif; max-width: 46rem; margin: 2rem auto; padding: 0 1rem; }
  fieldset { margin-bottom: 1.5rem; }
  label { display: block; margin-top: .5rem; }
  input, select, textarea { width: 100%; box-sizing: border-box; }
  textarea { font-family: monospace; min-height: 8rem; }
  .copy-message { display: none; color: #2c7a2c; margin-left: .5rem; }
  .story-list li { margin-bottom: .75rem; }
  .story-byline { color: #666; font-size: .9em; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>

<fieldset id="share-section">
  <legend>Share</legend>
{{if .CatalogMode}}
  <label for="story-select">Story</label>
  <select id="story-select"></select>
{{end}}
  <label for="share-url">Story link</label>
  <input id="share-url" readonly>
  <button id="copy-share" disabled><span id="copy-share-icon">&#128203;</span> Copy link</button>
  <span id="copy-share-message" class="copy-message"></span>

  <label for="site-url">Site link</label>
  <input id="site-url" readonly>
  <button id="copy-site"><span id="copy-site-icon">&#128203;</span> Copy site link</button>
  <span id="copy-site-message" class="copy-message"></span>
</fieldset>

<fieldset id="embed-section">
  <legend>Embed</legend>
{{if .CatalogMode}}
  <label for="story-select-embed">Story</label>
  <select id="story-select-embed"></select>
{{end}}
  <label for="embed-preset">Size preset</label>
  <select id="embed-preset">
    <option value="custom">Custom</option>
{{range .Presets}}    <option value="{{.}}">{{.}}</option>
{{end}}  </select>

  <label for="embed-width">Width</label>
  <input id="embed-width" value="{{.DefaultWidth}}">
  <label for="embed-height">Height</label>
  <input id="embed-height" value="{{.DefaultHeight}}">

  <label for="embed-code">Embed code</label>
  <textarea id="embed-code" readonly></textarea>
  <button id="copy-embed" disabled><span id="copy-embed-icon">&#128203;</span> Copy embed code</button>
  <span id="copy-embed-message" class="copy-message"></span>
</fieldset>

{{if .Stories}}
<h2>Stories</h2>
<ul class="story-list">
{{range .Stories}}  <li>
    <a href="{{.URL}}">{{.Title}}</a>
    {{if .Byline}}<span class="story-byline">{{.Byline}}</span>{{end}}
    {{if .Subtitle}}<div class="story-subtitle">{{.Subtitle}}</div>{{end}}
  </li>
{{end}}</ul>
{{end}}

` + panelBridgeScript + `
</body>
</html>
`

// panelBridgeScript is the thin browser side of the event bridge: DOM
// events go up as JSON, effect batches come down and are applied. All
// view-model logic stays server-side.
const panelBridgeScript = `<script>
(function() {
  var proto = window.location.protocol === "https:" ? "wss://" : "ws://";
  var socket = new WebSocket(proto + window.location.host + "/ws");

  function send(msg) {
    if (socket.readyState === WebSocket.OPEN) {
      socket.send(JSON.stringify(msg));
    }
  }

  socket.onopen = function() {
    var og = document.querySelector('meta[property="og:title"]');
    send({
      event: "panel-open",
      location: window.location.href,
      ogTitle: og ? og.content : "",
      docTitle: document.title
    });
  };

  socket.onmessage = function(raw) {
    var msg;
    try { msg = JSON.parse(raw.data); } catch (e) { return; }
    if (msg.reload) { window.location.reload(); return; }
    (msg.effects || []).forEach(apply);
  };

  function apply(e) {
    var el = document.getElementById(e.target);
    switch (e.op) {
      case "set-field":
        if (el) { el.value = e.value; }
        break;
      case "set-options":
        if (el) {
          el.innerHTML = "";
          (e.options || []).forEach(function(opt) {
            var o = document.createElement("option");
            o.value = opt.value;
            o.textContent = opt.label;
            el.appendChild(o);
          });
        }
        break;
      case "select-option":
        if (el) { el.value = e.value; }
        break;
      case "set-enabled":
        if (el) { el.disabled = !e.enabled; }
        break;
      case "show-message":
        var m = document.getElementById(e.target + "-message");
        if (m) { m.textContent = e.value; m.style.display = "inline"; }
        break;
      case "hide-message":
        var hm = document.getElementById(e.target + "-message");
        if (hm) { hm.style.display = "none"; }
        break;
      case "swap-icon":
        var ic = document.getElementById(e.target + "-icon");
        if (ic) { ic.dataset.original = ic.innerHTML; ic.innerHTML = "&#10003;"; }
        break;
      case "restore-icon":
        var ric = document.getElementById(e.target + "-icon");
        if (ric && ric.dataset.original) { ric.innerHTML = ric.dataset.original; }
        break;
      case "write-clipboard":
        navigator.clipboard.writeText(e.value).then(function() {
          send({ event: "copy-result", target: e.target, ok: true });
        }, function(err) {
          send({ event: "copy-result", target: e.target, ok: false, error: String(err) });
        });
        break;
    }
  }

  function on(id, type, fn) {
    var el = document.getElementById(id);
    if (el) { el.addEventListener(type, fn); }
  }

  ["story-select", "story-select-embed"].forEach(function(id) {
    on(id, "change", function(ev) {
      send({ event: "story-selected", url: ev.target.value, widget: id });
    });
  });
  on("embed-preset", "change", function(ev) {
    send({ event: "preset-chosen", key: ev.target.value });
  });
  ["embed-width", "embed-height"].forEach(function(id) {
    on(id, "input", function() {
      send({
        event: "dimension-edited",
        width: document.getElementById("embed-width").value,
        height: document.getElementById("embed-height").value
      });
    });
  });
  on("copy-share", "click", function() { send({ event: "copy-requested", target: "share" }); });
  on("copy-site", "click", function() { send({ event: "copy-requested", target: "site" }); });
  on("copy-embed", "click", function() { send({ event: "copy-requested", target: "embed" }); });
})();
</script>`
