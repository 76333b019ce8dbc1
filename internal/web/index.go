package web

import "net/http"

func indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Break The Code</title>
<style>
  * { box-sizing: border-box; margin: 0; padding: 0; }
  body {
    font-family: 'Segoe UI', system-ui, sans-serif;
    background: linear-gradient(135deg, #1a1a2e 0%, #16213e 100%);
    color: #eee;
    min-height: 100vh;
    display: flex;
    justify-content: center;
    padding: 2rem 1rem;
  }
  .app { width: 100%; max-width: 540px; }
  h1 { text-align: center; margin-bottom: 1.5rem; letter-spacing: 2px; }
  .panel {
    background: rgba(255,255,255,0.06);
    border-radius: 12px;
    padding: 1.5rem;
    margin-bottom: 1rem;
  }
  .hidden { display: none; }
  input, button {
    font-size: 1rem;
    padding: 0.6rem 0.8rem;
    border-radius: 8px;
    border: 1px solid #444;
    margin: 0.25rem 0;
  }
  input { background: #0f1525; color: #eee; width: 100%; }
  input.digits { letter-spacing: 0.5em; font-size: 1.4rem; text-align: center; }
  button {
    background: #e94560;
    color: white;
    border: none;
    cursor: pointer;
    width: 100%;
    font-weight: 600;
  }
  button:disabled { background: #555; cursor: default; }
  button.secondary { background: #2b3a67; }
  .code-banner {
    font-size: 1.8rem;
    letter-spacing: 0.4em;
    text-align: center;
    font-family: monospace;
    margin: 0.5rem 0;
  }
  .status { text-align: center; min-height: 1.4em; margin: 0.5rem 0; color: #9fd3c7; }
  .error { color: #ff6b6b; }
  .scores { display: flex; justify-content: space-around; margin-bottom: 0.5rem; }
  table { width: 100%; border-collapse: collapse; font-family: monospace; }
  th, td { padding: 0.3rem 0.5rem; text-align: center; border-bottom: 1px solid #333; }
  .mine { color: #9fd3c7; }
  .theirs { color: #f0a500; }
  .qr { display: block; margin: 0.5rem auto; border-radius: 8px; }
</style>
</head>
<body>
<div class="app">
  <h1>BREAK THE CODE</h1>
  <div id="status" class="status">Connecting...</div>

  <div id="lobby" class="panel">
    <input id="name" maxlength="20" placeholder="Your name">
    <button id="create">Create Room</button>
    <input id="room-code" maxlength="6" placeholder="Room code" style="text-transform:uppercase">
    <button id="join" class="secondary">Join Room</button>
  </div>

  <div id="waiting" class="panel hidden">
    <p style="text-align:center">Share this code with your opponent:</p>
    <div id="code-banner" class="code-banner"></div>
    <img id="qr" class="qr" width="192" height="192" alt="join QR">
  </div>

  <div id="setup" class="panel hidden">
    <p style="text-align:center">Pick your secret 4-digit number</p>
    <input id="secret" class="digits" maxlength="4" inputmode="numeric" placeholder="0000">
    <button id="set-secret">Lock It In</button>
  </div>

  <div id="game" class="panel hidden">
    <div class="scores">
      <span id="my-score" class="mine"></span>
      <span id="their-score" class="theirs"></span>
    </div>
    <div id="turn" class="status"></div>
    <input id="guess" class="digits" maxlength="4" inputmode="numeric" placeholder="????">
    <button id="make-guess">Guess</button>
    <table>
      <thead><tr><th>#</th><th>Who</th><th>Guess</th><th>Place</th><th>Digit</th></tr></thead>
      <tbody id="history"></tbody>
    </table>
    <button id="play-again" class="secondary hidden">Play Again</button>
  </div>
</div>

<script>
(function() {
  const proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
  const ws = new WebSocket(proto + location.host + '/ws');

  let roomCode = '';
  let myName = '';
  let myTurn = false;
  let rows = 0;

  const $ = id => document.getElementById(id);
  const show = id => $(id).classList.remove('hidden');
  const hide = id => $(id).classList.add('hidden');

  function status(msg, isErr) {
    $('status').textContent = msg;
    $('status').className = isErr ? 'status error' : 'status';
  }

  function send(type, data) {
    ws.send(JSON.stringify({ type: type, data: data || {} }));
  }

  function savedName() {
    const n = $('name').value.trim();
    if (n.length < 2) { status('Enter a name (2-20 characters)', true); return null; }
    myName = n;
    localStorage.setItem('btc-name', n);
    return n;
  }

  function addRow(who, guess, result, n, cls) {
    const tr = document.createElement('tr');
    tr.className = cls;
    tr.innerHTML = '<td>' + n + '</td><td>' + who + '</td><td>' + guess +
      '</td><td>' + result.correctPlace + '</td><td>' + result.wrongPlace + '</td>';
    $('history').prepend(tr);
    rows++;
  }

  function enterSetup() {
    hide('lobby'); hide('waiting'); hide('game');
    $('history').innerHTML = '';
    rows = 0;
    $('secret').value = '';
    hide('play-again');
    show('setup');
  }

  function setTurn(mine) {
    myTurn = mine;
    $('turn').textContent = mine ? 'Your turn' : "Opponent's turn";
    $('make-guess').disabled = !mine;
  }

  function setScores(scores) {
    for (const name in scores) {
      if (name === myName) $('my-score').textContent = 'You: ' + scores[name];
      else $('their-score').textContent = name + ': ' + scores[name];
    }
  }

  $('create').onclick = () => {
    if (savedName()) send('createRoom', { playerName: myName });
  };
  $('join').onclick = () => {
    const code = $('room-code').value.trim().toUpperCase();
    if (savedName()) send('joinRoom', { roomCode: code, playerName: myName });
  };
  function digits(id) {
    const raw = $(id).value.trim();
    if (!/^\d{4}$/.test(raw)) { status('Enter exactly 4 digits', true); return null; }
    return parseInt(raw, 10);
  }
  $('set-secret').onclick = () => {
    const n = digits('secret');
    if (n !== null) send('setSecretNumber', { number: n });
  };
  $('make-guess').onclick = () => {
    const n = digits('guess');
    if (n !== null) send('makeGuess', { number: n });
  };
  $('play-again').onclick = () => send('playAgain', {});

  ws.onopen = () => {
    status('Connected');
    $('name').value = localStorage.getItem('btc-name') || '';
    const saved = localStorage.getItem('btc-room');
    const savedPlayer = localStorage.getItem('btc-name');
    if (saved && savedPlayer) {
      myName = savedPlayer;
      send('rejoinRoom', { roomCode: saved, playerName: savedPlayer });
    }
    const params = new URLSearchParams(location.search);
    if (params.get('room')) $('room-code').value = params.get('room');
  };
  ws.onclose = () => status('Disconnected. Refresh to reconnect.', true);

  ws.onmessage = ev => {
    const msg = JSON.parse(ev.data);
    const d = msg.data || {};
    switch (msg.type) {
      case 'roomCreated':
        roomCode = d.roomCode;
        localStorage.setItem('btc-room', roomCode);
        hide('lobby');
        $('code-banner').textContent = roomCode;
        $('qr').src = '/rooms/' + roomCode + '/qr';
        show('waiting');
        status('Waiting for an opponent...');
        break;
      case 'roomJoined':
        roomCode = d.roomCode;
        localStorage.setItem('btc-room', roomCode);
        enterSetup();
        status('Joined room ' + roomCode);
        break;
      case 'playerJoined':
        enterSetup();
        status(d.playerName + ' joined!');
        break;
      case 'secretNumberSet':
        status(d.message);
        $('set-secret').disabled = true;
        break;
      case 'opponentReady':
        status(d.message);
        break;
      case 'gameStart':
        hide('setup');
        $('set-secret').disabled = false;
        show('game');
        status(d.message);
        setTurn(d.yourTurn);
        break;
      case 'guessResult':
        addRow('You', d.guess, d.result, d.guessNumber, 'mine');
        $('guess').value = '';
        setTurn(false);
        break;
      case 'opponentGuess':
        addRow(d.playerName, d.guess, d.result, d.guessNumber, 'theirs');
        setTurn(d.yourTurn);
        break;
      case 'gameWon':
        status(d.winner === myName
          ? 'You cracked the code!'
          : d.winner + ' cracked your code.');
        $('make-guess').disabled = true;
        show('play-again');
        break;
      case 'newRoundStarted':
        setScores(d.scores);
        enterSetup();
        status(d.message);
        break;
      case 'roomRejoined':
        roomCode = d.roomCode;
        setScores(d.scores);
        if (d.gameState === 'playing') {
          hide('lobby'); hide('waiting'); hide('setup');
          show('game');
          setTurn(d.yourTurn);
          status('Back in the game');
        } else if (d.gameState === 'setup') {
          enterSetup();
          status('Back in the room. Set your secret number.');
        } else {
          hide('lobby');
          $('code-banner').textContent = roomCode;
          show('waiting');
          status('Waiting for an opponent...');
        }
        break;
      case 'playerReconnected':
        status(d.playerName + ' reconnected');
        break;
      case 'playerDisconnected':
        status(d.message, !d.canContinue);
        if (!d.canContinue) {
          localStorage.removeItem('btc-room');
          hide('setup'); hide('game');
          $('code-banner').textContent = roomCode;
          show('waiting');
        }
        break;
      case 'error':
        status(d.message, true);
        break;
    }
  };
})();
</script>
</body>
</html>
`
