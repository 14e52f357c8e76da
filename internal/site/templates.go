package site

// pageTemplates holds every page and fragment template. Pages live at the
// site root, so asset and game links are plain relative paths.
const pageTemplates = `
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.}}</title>
  <link rel="stylesheet" href="assets/style.css">
  <script src="assets/app.js" defer></script>
</head>
{{end}}

{{define "card"}}<article class="card" style="--i: {{.Index}}" data-id="{{.ID}}">
  <div class="thumbwrap">
    <img class="thumb" src="{{.Thumb}}" alt="" loading="lazy">
    {{- if .New}}<span class="badge">NEW</span>{{end}}
  </div>
  <div class="cardbody">
    <h3 class="title">{{.Title}}</h3>
    <p class="desc">{{.Description}}</p>
    <div class="tags">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</div>
    <div class="actions">
      <a class="btn primary" href="{{.PlayURL}}">Play</a>
      <a class="btn" href="{{.DirectURL}}" target="_blank" rel="noopener">Direct</a>
    </div>
  </div>
</article>
{{end}}

{{define "grid"}}
{{- if .Failed}}<p class="notice error">Failed to load. Check <code>games.json</code>.</p>
{{- else}}{{range .Cards}}{{template "card" .}}{{else}}<p class="notice">No games found.</p>{{end}}
{{- end}}
{{- end}}

{{define "catalog"}}{{template "head" .SiteTitle}}<body class="catalog">
  <header class="topbar">
    <h1 class="brand"><a href="index.html">{{.SiteTitle}}</a></h1>
    <form class="searchform" method="get" action="index.html" role="search">
      <input type="search" id="search" name="q" value="{{.Grid.Query}}" placeholder="Search games…" autocomplete="off" aria-label="Search games">
    </form>
    <p id="count" class="count" aria-live="polite">{{.Grid.CountLabel}}</p>
  </header>
  <main>
    <section id="grid" class="grid" data-fragment="fragments/grid">
{{template "grid" .Grid}}
    </section>
  </main>
</body>
</html>
{{end}}

{{define "player"}}{{template "head" .PageTitle}}<body class="player">
  <header class="topbar">
    <a class="btn back" href="index.html">&larr; All games</a>
    <h1 id="title" class="title">{{.Title}}</h1>
    {{- if .Ready}}
    <div class="actions">
      <button id="fullscreenBtn" class="btn" type="button" disabled
        data-label-enter="{{.LabelEnter}}" data-label-exit="{{.LabelExit}}">{{.LabelEnter}}</button>
      <a class="btn" href="{{.FrameSrc}}" target="_blank" rel="noopener">Direct</a>
    </div>
    {{- end}}
  </header>
  <main>
    <p id="desc" class="desc">{{.Description}}</p>
    {{- if .Ready}}
    <div class="framewrap">
      <iframe id="frame" src="{{.FrameSrc}}" title="{{.Title}}"
        allow="autoplay; fullscreen; gamepad" allowfullscreen
        data-chrome="{{.ChromeJSON}}"></iframe>
    </div>
    {{- end}}
    {{- if .Notes}}
    <section class="notes">
{{.Notes}}
    </section>
    {{- end}}
  </main>
</body>
</html>
{{end}}
`
