package render

import "html/template"

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// pageHTML is the whole document layout. User-supplied strings pass
// through html/template contextual escaping; description HTML is
// sanitized Markdown output marked safe upstream.
const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ .Title }}</title>
<style>
:root {
  --bg: #f6f7f9;
  --card: #ffffff;
  --text: #1f2430;
  --muted: #6b7280;
  --accent: #3b82f6;
  --chip: #e8edf5;
  --private: #b45309;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #11151c;
    --card: #1a202b;
    --text: #e5e9f0;
    --muted: #94a3b8;
    --chip: #263042;
  }
}
* { box-sizing: border-box; }
body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
  background: var(--bg);
  color: var(--text);
  max-width: 1100px;
  margin: 0 auto;
  padding: 1.5em;
  line-height: 1.5;
}
header { display: flex; flex-wrap: wrap; align-items: baseline; gap: 1em; margin-bottom: 1.5em; }
header h1 { margin: 0; flex-grow: 1; font-size: 1.6em; }
.controls { display: flex; gap: 0.5em; }
.controls input, .controls select {
  font: inherit;
  padding: 0.4em 0.7em;
  border: 1px solid var(--chip);
  border-radius: 8px;
  background: var(--card);
  color: var(--text);
}
.project-card {
  background: var(--card);
  border-radius: 12px;
  padding: 1em 1.2em;
  margin-bottom: 1.2em;
  box-shadow: 0 1px 3px rgba(0,0,0,0.08);
}
.project-card h2 { margin: 0 0 0.3em; font-size: 1.15em; display: flex; align-items: center; gap: 0.4em; }
.project-icon { width: 1.2em; height: 1.2em; object-fit: contain; }
span.project-icon { width: auto; height: auto; }
.project-desc { color: var(--muted); margin-bottom: 0.8em; font-size: 0.92em; }
.project-desc p, .link-desc p { margin: 0; }
.links {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(240px, 1fr));
  gap: 0.7em;
}
.link-card {
  display: flex;
  gap: 0.6em;
  align-items: flex-start;
  padding: 0.6em 0.7em;
  border: 1px solid var(--chip);
  border-radius: 10px;
  text-decoration: none;
  color: inherit;
}
.link-card:hover { border-color: var(--accent); }
.favicon { width: 18px; height: 18px; margin-top: 2px; }
.link-name { font-weight: 600; font-size: 0.95em; }
.link-desc { color: var(--muted); font-size: 0.85em; }
.chips { margin-top: 0.3em; display: flex; flex-wrap: wrap; gap: 0.3em; }
.chip {
  background: var(--chip);
  border-radius: 999px;
  padding: 0.05em 0.6em;
  font-size: 0.75em;
  color: var(--muted);
}
.badge.private {
  color: var(--private);
  border: 1px solid var(--private);
  border-radius: 999px;
  padding: 0 0.45em;
  font-size: 0.7em;
  font-weight: 500;
  vertical-align: middle;
}
</style>
</head>
<body>
<header>
  <h1>{{ .Title }}</h1>
  <div class="controls">
    <input id="search" type="search" placeholder="Search links…" autocomplete="off">
    <select id="tag-filter">
      <option value="">All tags</option>
      {{ range .Tags }}<option value="{{ . }}">{{ . }}</option>
      {{ end }}</select>
  </div>
</header>
<main>
{{ range .Projects }}<section class="project-card">
  <h2>{{ if .IconURL }}<img class="project-icon" src="{{ .IconURL }}" alt="">{{ else if .IconText }}<span class="project-icon">{{ .IconText }}</span>{{ end }}{{ .Name }}</h2>
  {{ if .Description }}<div class="project-desc">{{ .Description }}</div>
  {{ end }}<div class="links">
  {{ range .Links }}<a class="link-card" href="{{ .URL }}" data-text="{{ .SearchText }}" data-tags="{{ .TagData }}">
    {{ if .Favicon }}<img class="favicon" src="{{ .Favicon }}" alt="" loading="lazy">{{ end }}
    <div class="link-body">
      <div class="link-name">{{ .Name }}{{ if .Private }} <span class="badge private">private</span>{{ end }}</div>
      {{ if .Description }}<div class="link-desc">{{ .Description }}</div>{{ end }}
      {{ if .Tags }}<div class="chips">{{ range .Tags }}<span class="chip">{{ . }}</span>{{ end }}</div>{{ end }}
    </div>
  </a>
  {{ end }}</div>
</section>
{{ end }}</main>
<script>
(function () {
  var input = document.getElementById('search');
  var select = document.getElementById('tag-filter');

  function apply() {
    var query = input.value.trim().toLowerCase();
    var tag = select.value;

    document.querySelectorAll('.project-card').forEach(function (project) {
      var visible = 0;
      project.querySelectorAll('.link-card').forEach(function (card) {
        var text = card.dataset.text || '';
        var tags = card.dataset.tags ? card.dataset.tags.split('\n') : [];
        var show = (!query || text.indexOf(query) !== -1) && (!tag || tags.indexOf(tag) !== -1);
        card.style.display = show ? '' : 'none';
        if (show) visible++;
      });
      project.style.display = visible ? '' : 'none';
    });
  }

  input.addEventListener('input', apply);
  select.addEventListener('change', apply);
})();
</script>
</body>
</html>
`
