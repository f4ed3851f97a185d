package web

import "html/template"

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>pagelens</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 40px auto; padding: 0 16px; }
input[type=url] { width: 100%; padding: 8px; box-sizing: border-box; }
select, button { padding: 8px; margin-top: 12px; }
.hint { color: #666; font-size: 0.9em; }
</style>
</head>
<body>
<h1>pagelens</h1>
<p class="hint">Fetch a page, count its words, and chart the top {{.TopN}} terms.</p>
<form action="/analyze" method="get">
  <input type="url" name="url" placeholder="https://example.com" value="{{.URL}}">
  <br>
  <select name="view">
    <option value="">Choose a visualization...</option>
    {{range .Views}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
    {{end}}
  </select>
  <button type="submit">Fetch and render</button>
</form>
</body>
</html>
`))

var errorTmpl = template.Must(template.New("error").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>pagelens - error</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 40px auto; padding: 0 16px; }
.message { background: #fff3f3; border: 1px solid #e0b4b4; padding: 16px; border-radius: 4px; }
</style>
</head>
<body>
<h1>pagelens</h1>
<p class="message">{{.Message}}</p>
<p><a href="/">Back</a></p>
</body>
</html>
`))

var galleryTmpl = template.Must(template.New("gallery").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>{{.Title}} - images</title>
<style>
body { font-family: sans-serif; max-width: 900px; margin: 40px auto; padding: 0 16px; }
figure { margin: 24px 0; }
img { max-width: 100%; }
figcaption { color: #666; font-size: 0.85em; word-break: break-all; }
.warning { background: #fffbe6; border: 1px solid #e0d8a0; padding: 12px; border-radius: 4px; word-break: break-all; }
.empty { color: #666; }
</style>
</head>
<body>
<h1>Images on {{.URL}}</h1>
{{if .Items}}
{{range .Items}}
{{if .Failed}}<p class="warning">Could not download or display image: {{.URL}} ({{.Error}})</p>
{{else}}<figure><img src="{{.DataURI}}" alt="{{.URL}}"><figcaption>{{.URL}}</figcaption></figure>
{{end}}
{{end}}
{{else}}
<p class="empty">No images found on this page.</p>
{{end}}
<p><a href="/">Back</a></p>
</body>
</html>
`))
