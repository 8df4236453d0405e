package handlers

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Placement Assistant</title>
  <style>
    body { font-family: sans-serif; max-width: 640px; margin: 2rem auto; padding: 0 1rem; }
    textarea { width: 100%; min-height: 160px; }
    pre { background: #f4f4f4; padding: 1rem; overflow-x: auto; white-space: pre-wrap; }
    button { padding: 0.5rem 1.5rem; }
    .error { color: #b00020; }
  </style>
</head>
<body>
  <h1>Placement Assistant</h1>
  <p>Upload your resume (PDF) and paste the job description to get a placement analysis.</p>
  <form id="analyze-form">
    <p><input type="file" name="resume" accept="application/pdf" required></p>
    <p><textarea name="job_description" placeholder="Paste the job description here..." required></textarea></p>
    <p><button type="submit">Analyze</button></p>
  </form>
  <div id="status"></div>
  <pre id="result" hidden></pre>
  <script>
    const form = document.getElementById('analyze-form');
    const status = document.getElementById('status');
    const result = document.getElementById('result');
    form.addEventListener('submit', async (e) => {
      e.preventDefault();
      status.textContent = 'Analyzing... this can take a while.';
      status.className = '';
      result.hidden = true;
      try {
        const resp = await fetch('/analyze', { method: 'POST', body: new FormData(form) });
        const data = await resp.json();
        if (!resp.ok) {
          status.textContent = data.error + (data.details ? ' ' + data.details : '');
          status.className = 'error';
          return;
        }
        status.textContent = '';
        result.textContent = JSON.stringify(data, null, 2);
        result.hidden = false;
      } catch (err) {
        status.textContent = 'Request failed: ' + err;
        status.className = 'error';
      }
    });
  </script>
</body>
</html>
`
